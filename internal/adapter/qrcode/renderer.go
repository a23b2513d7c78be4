// Package qrcode renders attendance scan tokens as PNG QR codes.
package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultSize is the default PNG edge length in pixels.
const DefaultSize = 256

// Renderer encodes tokens into PNG images.
type Renderer struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewRenderer creates a renderer producing size x size images.
func NewRenderer(size int) *Renderer {
	if size <= 0 {
		size = DefaultSize
	}
	return &Renderer{size: size, level: qrcode.Medium}
}

// PNG returns the QR code for token as a PNG image.
func (r *Renderer) PNG(token string) ([]byte, error) {
	if token == "" {
		return nil, fmt.Errorf("qrcode: empty token")
	}
	png, err := qrcode.Encode(token, r.level, r.size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: encode: %w", err)
	}
	return png, nil
}
