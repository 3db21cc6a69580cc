package sticker

import (
	"time"

	"github.com/tsawler/sticker/layout"
)

// generateOptions holds configuration accumulated through the fluent chain.
type generateOptions struct {
	widths          layout.LocationWidths
	widthsSet       bool
	normalizeWidths bool
	qrSizeCM        float64

	logoPath string
	logoData []byte

	progress    layout.ProgressFunc
	generatedAt time.Time // zero means time.Now at generation
}

// defaultGenerateOptions returns the default generation options.
func defaultGenerateOptions() generateOptions {
	return generateOptions{
		widths: layout.DefaultLocationWidths,
	}
}

// clone creates a deep copy of generateOptions.
func (o generateOptions) clone() generateOptions {
	newOpts := o
	if o.logoData != nil {
		newOpts.logoData = append([]byte(nil), o.logoData...)
	}
	return newOpts
}
