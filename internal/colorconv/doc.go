// Package colorconv implements the color conversions behind the color tools.
//
// The package is a set of stateless functions over two small value types:
//   - RGB: integer red, green and blue channels in the range 0-255
//   - HSL: hue in degrees [0, 360), saturation and lightness in percent [0, 100]
//
// # Operations
//
// Hex codec:
//   - HexToRGB: parse "#rrggbb" or "rrggbb" (case-insensitive)
//   - RGBToHex: format as lowercase "#rrggbb"
//
// Brightness:
//   - Lighten: add a percentage of full scale to every channel
//   - Darken: subtract a percentage of full scale from every channel
//
// HSL codec:
//   - RGBToHSL: hue as a whole degree, saturation and lightness to one decimal
//   - HSLToRGB: the inverse; hue is taken modulo 360 first
//
// Hue wheel:
//   - Complementary: hue + 180 (black and white map to each other)
//   - Triadic: hue + 120 and hue + 240
//   - Tetradic: hue + 90, hue + 180 and hue + 270
//
// # Rounding
//
// All rounding is half-up (toward positive infinity on a tie). Darken
// deliberately computes its step as floor(255*p/100 - 0.5), which is one unit
// smaller than the Lighten step; Darken(c, 0) therefore brightens every
// channel by one (capped at 255).
//
// # Error Handling
//
// Only two operations can fail:
//   - HexToRGB returns an error wrapping ErrInvalidFormat
//   - Lighten and Darken return an error wrapping ErrInvalidRange
//
// Use errors.Is to classify them. All other functions are total.
//
// # Thread Safety
//
// Nothing in this package holds state; every function is safe for concurrent use.
package colorconv
