package layout

import "fmt"

// Page and frame geometry, in centimeters. These are product constants:
// the sticker stock is 10x15cm, and every page carries the same outlined
// content frame.
const (
	PageWidthCM  = 10.0
	PageHeightCM = 15.0

	FrameWidthCM  = 9.8
	FrameHeightCM = 5.0
	FrameLeftCM   = 0.1
	FrameTopCM    = 0.1
)

// Row heights, in centimeters.
const (
	identityRowCM = 0.8
	partNoRowCM   = 0.9
	descRowCM     = 0.8
	detailRowCM   = 0.5 // quantity, type and date rows
	locationRowCM = 0.6
)

// Identity, part-number, description and detail row width fractions.
// The graphic occupies GraphicFraction of the content width and spans the
// three detail rows.
const (
	logoFrac        = 0.25
	identityHdrFrac = 0.15
	identityValFrac = 0.60

	headerFrac     = 0.25
	partNoValFrac  = 0.50
	partStatusFrac = 0.25
	descValFrac    = 0.75
	detailValFrac  = 0.35

	// GraphicFraction is the share of content width reserved for the QR
	// graphic beside the detail rows.
	GraphicFraction = 0.40
)

// widthTolerance is how far the location-row fractions may drift from 1.0
// before the configuration is rejected.
const widthTolerance = 0.01

// LogoAspect returns the width:height ratio of the identity row's logo
// region, for preparing logo images that fill it exactly.
func LogoAspect() float64 {
	return logoFrac * FrameWidthCM / identityRowCM
}

// LocationWidths holds the caller-configurable width fractions for the
// location row: the header cell followed by the four location boxes.
type LocationWidths [5]float64

// DefaultLocationWidths mirrors the stock label: a quarter-width header
// and four boxes filling the rest.
var DefaultLocationWidths = LocationWidths{0.25, 0.20, 0.20, 0.20, 0.15}

// Sum returns the total of the five fractions.
func (w LocationWidths) Sum() float64 {
	sum := 0.0
	for _, f := range w {
		sum += f
	}
	return sum
}

// ConfigError reports width fractions that do not sum to 1.0 within
// tolerance. It is returned before any label is laid out.
type ConfigError struct {
	Widths LocationWidths
	Sum    float64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("location width fractions sum to %.3f, want 1.0 ±%.2f", e.Sum, widthTolerance)
}

// Config carries everything the engine needs beyond the record itself.
// It is fixed before a batch starts and never mutated during the run.
type Config struct {
	// LocationWidths are the five location-row fractions.
	LocationWidths LocationWidths
	// HasLogo reserves the identity row's logo region for an image. The
	// region is laid out either way; this only affects rendering.
	HasLogo bool
	// QRSizeCM is the rendered edge length of the QR graphic. Zero means
	// the default.
	QRSizeCM float64
}

// DefaultQRSizeCM is the stock QR edge length.
const DefaultQRSizeCM = 1.4

// Validate rejects configurations whose location fractions do not sum to
// 1.0 within tolerance, and fills in defaults for zero values. Invalid
// totals are never silently accepted; callers that want proportional
// renormalization instead should apply NormalizeWidths first.
func (c *Config) Validate() error {
	if c.LocationWidths == (LocationWidths{}) {
		c.LocationWidths = DefaultLocationWidths
	}
	if sum := c.LocationWidths.Sum(); sum < 1.0-widthTolerance || sum > 1.0+widthTolerance {
		return &ConfigError{Widths: c.LocationWidths, Sum: sum}
	}
	for _, f := range c.LocationWidths {
		if f <= 0 {
			return &ConfigError{Widths: c.LocationWidths, Sum: c.LocationWidths.Sum()}
		}
	}
	if c.QRSizeCM <= 0 {
		c.QRSizeCM = DefaultQRSizeCM
	}
	return nil
}

// NormalizeWidths scales the fractions proportionally so they sum to 1.0.
// It fails only when the total is zero or negative.
func NormalizeWidths(w LocationWidths) (LocationWidths, error) {
	sum := w.Sum()
	if sum <= 0 {
		return w, fmt.Errorf("location width fractions sum to %.3f, cannot normalize", sum)
	}
	var out LocationWidths
	for i, f := range w {
		out[i] = f / sum
	}
	return out, nil
}
