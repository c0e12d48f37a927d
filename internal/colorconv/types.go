package colorconv

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	// ErrInvalidFormat is returned when a hex color string cannot be parsed.
	ErrInvalidFormat = errors.New("invalid hex color")

	// ErrInvalidRange is returned when a percentage or channel value is out of range.
	ErrInvalidRange = errors.New("value out of range")
)

// RGB represents a color with 8-bit red, green and blue channels.
//
// Channels are plain ints so that values decoded from JSON can be validated
// before use. Every RGB returned by this package has channels in 0-255.
type RGB struct {
	R int `json:"r"` // Red component (0-255)
	G int `json:"g"` // Green component (0-255)
	B int `json:"b"` // Blue component (0-255)
}

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSL struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L float64 `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
)

// Validate reports whether every channel lies in 0-255.
func (c RGB) Validate() error {
	for _, ch := range []struct {
		name string
		v    int
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}} {
		if ch.v < 0 || ch.v > 255 {
			return fmt.Errorf("channel %s=%d must be between 0 and 255: %w", ch.name, ch.v, ErrInvalidRange)
		}
	}
	return nil
}

// Clamp returns c with every channel forced into 0-255.
func (c RGB) Clamp() RGB {
	return RGB{R: clampChannel(c.R), G: clampChannel(c.G), B: clampChannel(c.B)}
}

// Color returns c as an opaque color.NRGBA.
func (c RGB) Color() color.NRGBA {
	c = c.Clamp()
	return color.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
}

// String formats c the same way as RGBToHex.
func (c RGB) String() string {
	return RGBToHex(c)
}

// FromColor converts any color.Color to RGB, dropping alpha.
//
// 16-bit components are scaled down by right-shifting 8 bits.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: int(r >> 8), G: int(g >> 8), B: int(b >> 8)}
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
