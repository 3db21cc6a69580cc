package layout

import (
	"time"

	"github.com/tsawler/sticker/dataset"
	"github.com/tsawler/sticker/label"
	"github.com/tsawler/sticker/schema"
)

// Fonts used on the label. The part number is the most prominent element;
// the description runs materially smaller so long text fits its row.
var (
	headerFont   = Font{Bold: true, Size: 8}
	valueFont    = Font{Size: 8}
	identityFont = Font{Bold: true, Size: 10}
	partNoFont   = Font{Bold: true, Size: 14}
	descFont     = Font{Size: 6.5}
)

// Engine lays out one record as a label grid. It holds only validated,
// read-only configuration, so a single engine serves a whole batch.
type Engine struct {
	cfg Config
}

// NewEngine validates the configuration and returns an engine. A
// *ConfigError is returned before any label is laid out when the location
// width fractions do not sum to 1.0 within tolerance.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's validated configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Build lays out one record. It is a pure function of the record, the
// engine's configuration and the generation time, and never fails: missing
// values lay out as empty cells and rendering-stage problems (logo, QR)
// are the renderer's to degrade.
func (e *Engine) Build(rec dataset.Record, now time.Time) *Label {
	loc := label.SplitLocation(rec.Get(schema.LineLocation))
	payload := label.BuildPayload(rec, now)

	rows := make([]Row, 0, 7)

	// Identity row: logo | "ASSLY" | assembly name.
	rows = append(rows, Row{
		Height: identityRowCM,
		Regions: []Region{
			{Width: logoFrac, Kind: KindLogo},
			{Width: identityHdrFrac, Kind: KindHeader, Text: schema.AssemblyName.Label(), Font: headerFont},
			{Width: identityValFrac, Kind: KindText, Text: rec.Get(schema.AssemblyName), Font: identityFont},
		},
	})

	// Primary-key row: the part number carries the label.
	rows = append(rows, Row{
		Height: partNoRowCM,
		Regions: []Region{
			{Width: headerFrac, Kind: KindHeader, Text: "PART NO", Font: headerFont},
			{Width: partNoValFrac, Kind: KindText, Text: rec.Get(schema.PartNumber), Font: partNoFont},
			{Width: partStatusFrac, Kind: KindText, Text: rec.Get(schema.PartStatus), Font: valueFont},
		},
	})

	// Description row: wrapped, small type.
	rows = append(rows, Row{
		Height: descRowCM,
		Regions: []Region{
			{Width: headerFrac, Kind: KindHeader, Text: "DESCRIPTION", Font: headerFont},
			{Width: descValFrac, Kind: KindText, Text: rec.Get(schema.Description), Font: descFont, Wrap: true},
		},
	})

	// Quantity row opens the graphic span: the QR covers this row plus the
	// type and date rows below it.
	qtyRegions := []Region{
		{Width: headerFrac, Kind: KindHeader, Text: schema.Quantity.Label(), Font: headerFont},
	}
	if bin := rec.Get(schema.BinType); bin != "" {
		qtyRegions = append(qtyRegions,
			Region{Width: detailValFrac / 2, Kind: KindText, Text: rec.Get(schema.Quantity), Font: valueFont},
			Region{Width: detailValFrac / 2, Kind: KindText, Text: bin, Font: valueFont},
		)
	} else {
		qtyRegions = append(qtyRegions,
			Region{Width: detailValFrac, Kind: KindText, Text: rec.Get(schema.Quantity), Font: valueFont},
		)
	}
	qtyRegions = append(qtyRegions,
		Region{Width: GraphicFraction, Kind: KindGraphic, Text: payload, Span: 3},
	)
	rows = append(rows, Row{Height: detailRowCM, Regions: qtyRegions})

	// Type and date rows: the graphic continues through span-fill cells so
	// the grid keeps a cell per column without drawing over the image.
	rows = append(rows, Row{
		Height: detailRowCM,
		Regions: []Region{
			{Width: headerFrac, Kind: KindHeader, Text: schema.PartType.Label(), Font: headerFont},
			{Width: detailValFrac, Kind: KindText, Text: rec.Get(schema.PartType), Font: valueFont},
			{Width: GraphicFraction, Kind: KindSpanFill},
		},
	})
	rows = append(rows, Row{
		Height: detailRowCM,
		Regions: []Region{
			{Width: headerFrac, Kind: KindHeader, Text: "DATE", Font: headerFont},
			{Width: detailValFrac, Kind: KindText, Text: now.Format("2006-01-02"), Font: valueFont},
			{Width: GraphicFraction, Kind: KindSpanFill},
		},
	})

	// Location row: header plus the four boxes, widths from configuration.
	locRegions := make([]Region, 0, 1+label.LocationSlots)
	locRegions = append(locRegions, Region{
		Width: e.cfg.LocationWidths[0], Kind: KindHeader, Text: schema.LineLocation.Label(), Font: headerFont,
	})
	for i := 0; i < label.LocationSlots; i++ {
		locRegions = append(locRegions, Region{
			Width: e.cfg.LocationWidths[i+1], Kind: KindText, Text: loc[i], Font: valueFont,
		})
	}
	rows = append(rows, Row{Height: locationRowCM, Regions: locRegions})

	return &Label{Rows: rows, Payload: payload}
}
