package colorconv

import (
	"fmt"
	"regexp"
	"strconv"
)

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// HexToRGB parses a six digit hex color such as "#ff8040" or "FF8040".
//
// The leading '#' is optional and digits are case-insensitive. Short
// three-digit forms and alpha suffixes are rejected with ErrInvalidFormat.
func HexToRGB(hex string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, fmt.Errorf("%q: %w", hex, ErrInvalidFormat)
	}

	var ch [3]int
	for i := range ch {
		// The pattern guarantees two hex digits, so this cannot fail.
		v, _ := strconv.ParseUint(m[i+1], 16, 8)
		ch[i] = int(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// RGBToHex formats rgb as "#rrggbb" in lowercase.
//
// Out-of-range channels are clamped to 0-255 so the result is always seven
// characters long.
func RGBToHex(rgb RGB) string {
	rgb = rgb.Clamp()
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}
