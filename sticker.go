// Package sticker provides a fluent API for generating print-ready sticker
// label PDFs from tabular part data.
//
// Basic usage:
//
//	pdf, warnings, err := sticker.Open("parts.xlsx").PDF()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", sticker.FormatWarnings(warnings))
//	}
//
// With options:
//
//	pdf, _, err := sticker.Open("parts.csv").
//	    Logo("logo.png").
//	    LocationWidths(0.25, 0.20, 0.20, 0.20, 0.15).
//	    Progress(func(done, total int) { fmt.Printf("%d/%d\n", done, total) }).
//	    PDF()
//
// Each label is a 10x15cm page carrying the part's identity, description,
// quantity, type and line-location boxes, plus a QR code encoding the
// record's fields. Column names in the source data are matched fuzzily
// against the known spellings; see the schema package.
package sticker

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tsawler/sticker/dataset"
	"github.com/tsawler/sticker/layout"
	"github.com/tsawler/sticker/render"
	"github.com/tsawler/sticker/schema"
)

// Warning reports a non-fatal, per-record problem. The batch completes
// despite warnings.
type Warning = render.Warning

// FormatWarnings renders warnings one per line for display.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// Generator provides fluent configuration for label generation.
// Each configuration method returns a new Generator instance, making it
// safe to fork chains and reuse prefixes.
type Generator struct {
	// Source: exactly one of filename or table is set.
	filename string
	table    *dataset.Table

	// Configuration
	opts generateOptions

	// Accumulated error (fail-fast)
	err error
}

// Open prepares a generator reading part data from a CSV or XLSX file.
// The file is not touched until a terminal method runs.
func Open(filename string) *Generator {
	return &Generator{
		filename: filename,
		opts:     defaultGenerateOptions(),
	}
}

// FromTable prepares a generator over an already-loaded table. Useful when
// the caller owns file handling, or in tests.
func FromTable(t *dataset.Table) *Generator {
	return &Generator{
		table: t,
		opts:  defaultGenerateOptions(),
	}
}

// clone creates a copy of the Generator with a deep copy of options.
func (g *Generator) clone() *Generator {
	return &Generator{
		filename: g.filename,
		table:    g.table,
		opts:     g.opts.clone(),
		err:      g.err,
	}
}

// Logo sets an optional logo image file (PNG, JPEG or GIF) placed in the
// identity row. A logo that cannot be read or decoded degrades to an empty
// region with a warning; it never fails the batch.
func (g *Generator) Logo(filename string) *Generator {
	newGen := g.clone()
	newGen.opts.logoPath = filename
	newGen.opts.logoData = nil
	return newGen
}

// LogoReader sets the logo from a reader. The content is read immediately.
func (g *Generator) LogoReader(r io.Reader) *Generator {
	newGen := g.clone()
	data, err := io.ReadAll(r)
	if err != nil && newGen.err == nil {
		newGen.err = fmt.Errorf("reading logo: %w", err)
		return newGen
	}
	newGen.opts.logoData = data
	newGen.opts.logoPath = ""
	return newGen
}

// LocationWidths sets the five location-row width fractions: the header
// cell followed by the four location boxes. The fractions must sum to 1.0
// within a small tolerance or generation is rejected before any label is
// produced; chain NormalizedWidths after this call to opt into
// proportional renormalization instead.
func (g *Generator) LocationWidths(header, box1, box2, box3, box4 float64) *Generator {
	newGen := g.clone()
	newGen.opts.widths = layout.LocationWidths{header, box1, box2, box3, box4}
	newGen.opts.widthsSet = true
	return newGen
}

// NormalizedWidths rescales the configured width fractions proportionally
// so they sum to 1.0, instead of rejecting an invalid total.
func (g *Generator) NormalizedWidths() *Generator {
	newGen := g.clone()
	newGen.opts.normalizeWidths = true
	return newGen
}

// QRSize sets the rendered edge length of the QR graphic in centimeters.
func (g *Generator) QRSize(cm float64) *Generator {
	newGen := g.clone()
	newGen.opts.qrSizeCM = cm
	return newGen
}

// Progress registers a callback invoked once per record as labels are laid
// out, with the count done so far and the total.
func (g *Generator) Progress(fn func(done, total int)) *Generator {
	newGen := g.clone()
	newGen.opts.progress = fn
	return newGen
}

// GeneratedAt fixes the generation timestamp used in the date row, the QR
// payload and DefaultFilename. The default is the current time.
func (g *Generator) GeneratedAt(t time.Time) *Generator {
	newGen := g.clone()
	newGen.opts.generatedAt = t
	return newGen
}

// Columns resolves the dataset's headers against the known column
// spellings without generating anything. Use it to show the user which
// columns were detected. The returned map is the same one generation will
// use.
func (g *Generator) Columns() (schema.ColumnMap, error) {
	if g.err != nil {
		return schema.ColumnMap{}, g.err
	}
	table, err := g.loadTable()
	if err != nil {
		return schema.ColumnMap{}, err
	}
	return schema.Resolve(table.Headers)
}

// PDF generates labels for every record and returns the finished PDF
// bytes. One label per record, in input order, one page per label.
//
// Schema and configuration problems fail before any per-record work;
// per-record asset problems (logo, QR) come back as warnings alongside a
// complete artifact. A non-nil error means no artifact.
func (g *Generator) PDF() ([]byte, []Warning, error) {
	var buf bytes.Buffer
	warnings, err := g.WritePDF(&buf)
	if err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), warnings, nil
}

// WritePDF generates labels and writes the PDF to w. Nothing is written
// on error: partial documents are never produced.
func (g *Generator) WritePDF(w io.Writer) ([]Warning, error) {
	if g.err != nil {
		return nil, g.err
	}

	table, err := g.loadTable()
	if err != nil {
		return nil, err
	}

	// Fail-fast checks: schema first, then configuration. Both happen
	// before any record is laid out.
	cm, err := schema.Resolve(table.Headers)
	if err != nil {
		return nil, err
	}

	widths := g.opts.widths
	if g.opts.normalizeWidths && g.opts.widthsSet {
		widths, err = layout.NormalizeWidths(widths)
		if err != nil {
			return nil, err
		}
	}
	cfg := layout.Config{
		LocationWidths: widths,
		QRSizeCM:       g.opts.qrSizeCM,
	}

	var warnings []Warning
	logo, logoWarn := g.loadLogo()
	if logoWarn != nil {
		warnings = append(warnings, *logoWarn)
	}
	cfg.HasLogo = logo != nil

	engine, err := layout.NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	now := g.opts.generatedAt
	if now.IsZero() {
		now = time.Now()
	}

	doc := layout.Assemble(engine, table.Records(cm), now, g.opts.progress)

	renderer := render.NewRenderer(engine.Config(), render.NewQREncoder(), logo)
	renderWarnings, err := renderer.RenderTo(doc, w)
	if err != nil {
		return nil, err
	}
	return append(warnings, renderWarnings...), nil
}

// SavePDF generates labels and writes the PDF to path. The file is only
// created once generation has fully succeeded.
func (g *Generator) SavePDF(path string) ([]Warning, error) {
	data, warnings, err := g.PDF()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, &render.FatalError{Op: "writing PDF artifact", Err: err}
	}
	return warnings, nil
}

// loadTable returns the source table, reading the input file on first use.
func (g *Generator) loadTable() (*dataset.Table, error) {
	if g.table != nil {
		return g.table, nil
	}
	if g.filename == "" {
		return nil, fmt.Errorf("no input specified")
	}
	table, err := dataset.Open(g.filename)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	g.table = table
	return table, nil
}

// loadLogo prepares the configured logo, if any. Failures degrade to a
// batch-level warning and no logo; they never fail the batch.
func (g *Generator) loadLogo() (image.Image, *Warning) {
	var r io.Reader
	switch {
	case g.opts.logoData != nil:
		r = bytes.NewReader(g.opts.logoData)
	case g.opts.logoPath != "":
		f, err := os.Open(g.opts.logoPath)
		if err != nil {
			return nil, &Warning{Record: -1, Asset: "logo", Message: err.Error()}
		}
		defer f.Close()
		r = f
	default:
		return nil, nil
	}

	img, err := render.PrepareLogo(r, layout.LogoAspect())
	if err != nil {
		return nil, &Warning{Record: -1, Asset: "logo", Message: err.Error()}
	}
	return img, nil
}

// DefaultFilename returns the conventional artifact name for a batch
// generated at t, e.g. "sticker_labels_20260829_153000.pdf".
func DefaultFilename(t time.Time) string {
	return fmt.Sprintf("sticker_labels_%s.pdf", t.Format("20060102_150405"))
}
