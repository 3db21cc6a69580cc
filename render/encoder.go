package render

import (
	"fmt"
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// Encoder produces the scannable raster image for a label payload. The
// renderer treats it as a black box so the encoding scheme can be swapped
// or faked in tests.
type Encoder interface {
	// Encode renders the payload as a square raster image of the given
	// pixel edge length.
	Encode(payload string, sizePx int) (image.Image, error)
}

// QREncoder encodes payloads as QR codes.
type QREncoder struct {
	// Level is the error-correction level. The zero value (Low) is fine
	// for labels scanned up close; Medium is the stock choice.
	Level qrcode.RecoveryLevel
}

// NewQREncoder returns an encoder with medium error correction.
func NewQREncoder() QREncoder {
	return QREncoder{Level: qrcode.Medium}
}

// Encode implements Encoder.
func (e QREncoder) Encode(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, fmt.Errorf("empty payload")
	}
	q, err := qrcode.New(payload, e.Level)
	if err != nil {
		return nil, fmt.Errorf("encoding QR payload: %w", err)
	}
	return q.Image(sizePx), nil
}
