package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	// Register the decoders a logo upload plausibly arrives in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// logoCanvasHeightPx is the pixel height of the prepared logo canvas.
// Comfortably above print resolution for a sub-centimeter region.
const logoCanvasHeightPx = 128

// PrepareLogo decodes a logo image and fits it onto a white canvas with
// the given width:height aspect ratio, scaled to preserve the source's own
// aspect and centered with white bars on the short sides. Flattening onto
// white also removes transparency, which PDF image placement would
// otherwise render black on some viewers.
//
// The returned image can be drawn to exactly fill the label's logo region.
func PrepareLogo(r io.Reader, aspect float64) (image.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding logo: %w", err)
	}
	if aspect <= 0 {
		aspect = 1
	}

	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return nil, fmt.Errorf("logo has zero size")
	}

	canvasH := logoCanvasHeightPx
	canvasW := int(float64(canvasH) * aspect)
	if canvasW < 1 {
		canvasW = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)

	// Scale to fit, preserving the source aspect ratio.
	scale := float64(canvasW) / float64(sb.Dx())
	if s := float64(canvasH) / float64(sb.Dy()); s < scale {
		scale = s
	}
	w := int(float64(sb.Dx()) * scale)
	h := int(float64(sb.Dy()) * scale)
	x0 := (canvasW - w) / 2
	y0 := (canvasH - h) / 2

	xdraw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+w, y0+h), src, sb, xdraw.Over, nil)
	return dst, nil
}
