package colorconv

import "math"

// RGBToHSL converts rgb to HSL color space.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components and their difference (delta)
//  3. Calculate Hue based on which component is max, in whole degrees
//  4. Calculate Lightness as (max + min) / 2
//  5. Calculate Saturation as delta / (1 - |2L - 1|)
//
// Achromatic colors (delta == 0) have hue and saturation 0. Saturation and
// lightness are returned as percentages rounded to one decimal place.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	cmin := math.Min(r, math.Min(g, b))
	cmax := math.Max(r, math.Max(g, b))
	delta := cmax - cmin

	var h float64
	switch {
	case delta == 0:
		h = 0
	case cmax == r:
		h = math.Mod((g-b)/delta, 6)
	case cmax == g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	h = roundHalfUp(h * 60)
	if h < 0 {
		h += 360
	}

	l := (cmax + cmin) / 2

	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	return HSL{
		H: h,
		S: roundTenth(s * 100),
		L: roundTenth(l * 100),
	}
}

// HSLToRGB converts hsl back to RGB.
//
// The hue is normalized into [0, 360) first, so 360 behaves like 0 and -90
// like 270. Channels are rounded half-up and clamped to 0-255.
func HSLToRGB(hsl HSL) RGB {
	h := normalizeHue(hsl.H)
	s := hsl.S / 100
	l := hsl.L / 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case 0 <= h && h < 60:
		r, g, b = c, x, 0
	case 60 <= h && h < 120:
		r, g, b = x, c, 0
	case 120 <= h && h < 180:
		r, g, b = 0, c, x
	case 180 <= h && h < 240:
		r, g, b = 0, x, c
	case 240 <= h && h < 300:
		r, g, b = x, 0, c
	case 300 <= h && h < 360:
		r, g, b = c, 0, x
	}

	return RGB{
		R: clampChannel(int(roundHalfUp((r + m) * 255))),
		G: clampChannel(int(roundHalfUp((g + m) * 255))),
		B: clampChannel(int(roundHalfUp((b + m) * 255))),
	}
}

// normalizeHue maps any hue onto [0, 360). NaN is left alone and ends up black.
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-14 + 360 rounds to 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// roundHalfUp rounds to the nearest integer, ties toward positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// roundTenth rounds a non-negative value to one decimal place.
func roundTenth(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
