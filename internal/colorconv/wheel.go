package colorconv

import "math"

// Complementary returns the color opposite rgb on the hue wheel.
//
// Black and white are special-cased to map to each other; every other color
// keeps its saturation and lightness and has its hue rotated by 180 degrees.
func Complementary(rgb RGB) RGB {
	switch rgb {
	case black:
		return white
	case white:
		return black
	}
	return rotateHue(RGBToHSL(rgb), 180)
}

// Triadic returns the two colors at +120 and +240 degrees from rgb.
//
// Unlike Complementary there is no black/white shortcut; achromatic inputs
// come back unchanged.
func Triadic(rgb RGB) [2]RGB {
	hsl := RGBToHSL(rgb)
	return [2]RGB{rotateHue(hsl, 120), rotateHue(hsl, 240)}
}

// Tetradic returns the three colors at +90, +180 and +270 degrees from rgb.
func Tetradic(rgb RGB) [3]RGB {
	hsl := RGBToHSL(rgb)
	return [3]RGB{rotateHue(hsl, 90), rotateHue(hsl, 180), rotateHue(hsl, 270)}
}

func rotateHue(hsl HSL, degrees float64) RGB {
	hsl.H = math.Mod(hsl.H+degrees, 360)
	return HSLToRGB(hsl)
}
