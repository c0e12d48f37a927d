package colorconv

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DistanceResult contains the difference between two colors under several metrics.
type DistanceResult struct {
	From      string  `json:"from"`      // Hex of the first color
	To        string  `json:"to"`        // Hex of the second color
	CIEDE2000 float64 `json:"ciede2000"` // Perceptual difference (CIE ΔE 2000), ~0-1
	Lab       float64 `json:"lab"`       // Euclidean distance in CIE L*a*b*
	RGB       float64 `json:"rgb"`       // Euclidean distance in normalized sRGB
}

// Distance measures how far apart a and b are.
//
// CIEDE2000 is the most perceptually uniform metric; values below roughly
// 0.01 are indistinguishable to most viewers.
func Distance(a, b RGB) DistanceResult {
	ca, cb := toColorful(a), toColorful(b)
	return DistanceResult{
		From:      RGBToHex(a),
		To:        RGBToHex(b),
		CIEDE2000: ca.DistanceCIEDE2000(cb),
		Lab:       ca.DistanceLab(cb),
		RGB:       ca.DistanceRgb(cb),
	}
}

func toColorful(c RGB) colorful.Color {
	c = c.Clamp()
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
