package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/tsawler/sticker/layout"
)

const (
	frameLineWidth = 0.03 // cm
	gridLineWidth  = 0.02 // cm
	cellPad        = 0.06 // cm, inner padding for images
	qrImagePx      = 256  // pixel edge length of encoded QR rasters

	// graphicPlaceholder is drawn in the spanned region when the payload
	// cannot be encoded. The label still prints; only the graphic degrades.
	graphicPlaceholder = "QR UNAVAILABLE"

	// ptToCM converts a font point size to centimeters.
	ptToCM = 2.54 / 72.0
)

// Renderer draws a laid-out document onto 10x15cm pages and produces the
// PDF artifact. Configuration and assets are fixed at construction and
// read-only during a run.
type Renderer struct {
	cfg     layout.Config
	encoder Encoder
	logo    image.Image // prepared via PrepareLogo, nil when absent
}

// NewRenderer returns a renderer. A nil logo renders the logo region
// empty; a nil encoder degrades every graphic to its text placeholder.
func NewRenderer(cfg layout.Config, enc Encoder, logo image.Image) *Renderer {
	return &Renderer{cfg: cfg, encoder: enc, logo: logo}
}

// Render draws the document and returns the finished PDF bytes. Asset
// problems are returned as warnings alongside a complete artifact; a
// non-nil error means the artifact could not be produced at all, and then
// no bytes are returned.
func (r *Renderer) Render(doc *layout.Document) ([]byte, []Warning, error) {
	var buf bytes.Buffer
	warnings, err := r.RenderTo(doc, &buf)
	if err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), warnings, nil
}

// RenderTo draws the document and writes the PDF to w. Nothing is written
// on error.
func (r *Renderer) RenderTo(doc *layout.Document, w io.Writer) ([]Warning, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "cm",
		Size:           fpdf.SizeType{Wd: layout.PageWidthCM, Ht: layout.PageHeightCM},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0.05)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	st := &renderState{pdf: pdf, tr: tr}
	if r.logo != nil {
		if err := st.registerImage("logo", r.logo); err != nil {
			// Unusable logo degrades to an empty region for every label.
			st.warnings = append(st.warnings, Warning{Record: -1, Asset: "logo", Message: err.Error()})
		} else {
			st.hasLogo = true
		}
	}

	labelIdx := 0
	needPage := true
	for _, el := range doc.Elements {
		switch v := el.(type) {
		case layout.PageBreak:
			needPage = true
		case *layout.Label:
			if needPage {
				pdf.AddPage()
				r.drawFrame(pdf)
				needPage = false
			}
			r.drawLabel(st, v, labelIdx)
			labelIdx++
		}
	}

	if pdf.Err() {
		return nil, &FatalError{Op: "assembling PDF document", Err: pdf.Error()}
	}
	if err := pdf.Output(w); err != nil {
		return nil, &FatalError{Op: "writing PDF artifact", Err: err}
	}
	return st.warnings, nil
}

// renderState carries per-run drawing state.
type renderState struct {
	pdf      *fpdf.Fpdf
	tr       func(string) string
	hasLogo  bool
	warnings []Warning
}

// registerImage encodes an image as PNG and registers it with the PDF
// under the given name.
func (st *renderState) registerImage(name string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding %s image: %w", name, err)
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	st.pdf.RegisterImageOptionsReader(name, opts, &buf)
	return nil
}

// drawFrame outlines the usable content frame. Every page gets the same
// frame regardless of content.
func (r *Renderer) drawFrame(pdf *fpdf.Fpdf) {
	pdf.SetLineWidth(frameLineWidth)
	pdf.Rect(layout.FrameLeftCM, layout.FrameTopCM, layout.FrameWidthCM, layout.FrameHeightCM, "D")
	pdf.SetLineWidth(gridLineWidth)
}

// drawLabel draws one label's region grid starting at the frame origin.
func (r *Renderer) drawLabel(st *renderState, l *layout.Label, labelIdx int) {
	y := layout.FrameTopCM
	for rowIdx, row := range l.Rows {
		x := layout.FrameLeftCM
		for _, reg := range row.Regions {
			w := reg.Width * layout.FrameWidthCM
			h := spanHeight(l.Rows, rowIdx, reg.RowSpan())

			switch reg.Kind {
			case layout.KindSpanFill:
				// Structurally present; the spanning region above already
				// drew here.
			case layout.KindLogo:
				r.drawLogo(st, x, y, w, h)
			case layout.KindGraphic:
				r.drawGraphic(st, reg, x, y, w, h, labelIdx)
			default:
				r.drawTextCell(st, reg, x, y, w, h)
			}
			x += w
		}
		y += row.Height
	}
}

// spanHeight sums the heights of the rows a region covers.
func spanHeight(rows []layout.Row, rowIdx, span int) float64 {
	h := 0.0
	for i := rowIdx; i < rowIdx+span && i < len(rows); i++ {
		h += rows[i].Height
	}
	return h
}

func fontStyle(f layout.Font) string {
	if f.Bold {
		return "B"
	}
	return ""
}

// drawTextCell draws a bordered cell with single-line or wrapped text.
func (r *Renderer) drawTextCell(st *renderState, reg layout.Region, x, y, w, h float64) {
	pdf := st.pdf
	pdf.SetFont("Helvetica", fontStyle(reg.Font), reg.Font.Size)

	if !reg.Wrap {
		pdf.SetXY(x, y)
		pdf.CellFormat(w, h, st.tr(reg.Text), "1", 0, "CM", false, 0, "")
		return
	}

	// Wrapped text: border first, then as many lines as fit.
	pdf.Rect(x, y, w, h, "D")
	lineH := reg.Font.Size * ptToCM * 1.25
	lines := pdf.SplitText(st.tr(reg.Text), w-2*cellPad)
	maxLines := int((h - 2*cellPad) / lineH)
	if maxLines < 1 {
		maxLines = 1
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	// Center the block vertically within the cell.
	ty := y + (h-float64(len(lines))*lineH)/2
	for _, line := range lines {
		pdf.SetXY(x+cellPad, ty)
		pdf.CellFormat(w-2*cellPad, lineH, line, "0", 0, "L", false, 0, "")
		ty += lineH
	}
}

// drawLogo draws the bordered logo region, placing the prepared logo image
// if one is configured. The region keeps its width either way.
func (r *Renderer) drawLogo(st *renderState, x, y, w, h float64) {
	st.pdf.Rect(x, y, w, h, "D")
	if !st.hasLogo {
		return
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	st.pdf.ImageOptions("logo", x+cellPad, y+cellPad, w-2*cellPad, h-2*cellPad, false, opts, 0, "")
}

// drawGraphic draws the spanned QR region: a border over the full span,
// then the encoded payload image centered inside it. Encoding failures
// degrade to a text placeholder and a warning; the batch continues.
func (r *Renderer) drawGraphic(st *renderState, reg layout.Region, x, y, w, h float64, labelIdx int) {
	pdf := st.pdf
	pdf.Rect(x, y, w, h, "D")

	img, err := r.encodeGraphic(reg.Text)
	if err != nil {
		st.graphicFallback(x, y, w, h, labelIdx, err)
		return
	}

	name := fmt.Sprintf("qr-%d", labelIdx)
	if err := st.registerImage(name, img); err != nil {
		st.graphicFallback(x, y, w, h, labelIdx, err)
		return
	}

	size := r.cfg.QRSizeCM
	if m := w - 2*cellPad; size > m {
		size = m
	}
	if m := h - 2*cellPad; size > m {
		size = m
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.ImageOptions(name, x+(w-size)/2, y+(h-size)/2, size, size, false, opts, 0, "")
}

// graphicFallback records the warning and draws the text placeholder in
// the spanned region.
func (st *renderState) graphicFallback(x, y, w, h float64, labelIdx int, err error) {
	st.warnings = append(st.warnings, Warning{Record: labelIdx, Asset: "qr", Message: err.Error()})
	st.pdf.SetFont("Helvetica", "", 6)
	st.pdf.SetXY(x, y)
	st.pdf.CellFormat(w, h, graphicPlaceholder, "0", 0, "CM", false, 0, "")
}

func (r *Renderer) encodeGraphic(payload string) (image.Image, error) {
	if r.encoder == nil {
		return nil, fmt.Errorf("no encoder configured")
	}
	return r.encoder.Encode(payload, qrImagePx)
}
