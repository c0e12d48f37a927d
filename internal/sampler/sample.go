package sampler

import (
	"fmt"
	"image"
	"sort"

	"github.com/ironsheep/color-tools-mcp/internal/colorconv"
)

// SampleColor returns the color of the pixel at (x, y).
//
// Alpha is discarded. For 16-bit images the components are scaled down by
// right-shifting 8 bits.
//
// Returns an error if the coordinates are outside the image bounds.
func SampleColor(img image.Image, x, y int) (colorconv.ColorResult, error) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return colorconv.ColorResult{}, fmt.Errorf("coordinates (%d,%d) outside image bounds %v", x, y, img.Bounds())
	}
	return colorconv.Describe(colorconv.FromColor(img.At(x, y))), nil
}

// Point is a pixel coordinate with an optional label.
type Point struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

// Sample is the color found at a Point.
type Sample struct {
	Point
	Color colorconv.ColorResult `json:"color"`
}

// SampleColors samples every point in order. If any point is out of bounds
// no partial result is returned.
func SampleColors(img image.Image, points []Point) ([]Sample, error) {
	samples := make([]Sample, 0, len(points))
	for i, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			name := p.Label
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("failed to sample point %s: %w", name, err)
		}
		samples = append(samples, Sample{Point: p, Color: c})
	}
	return samples, nil
}

// Region is a rectangle inside an image; X2 and Y2 are exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// ColorFrequency is a quantized color and the share of pixels that map to it.
type ColorFrequency struct {
	Hex        string        `json:"hex"`
	RGB        colorconv.RGB `json:"rgb"`
	Percentage float64       `json:"percentage"` // 0-100
}

// quantum groups channels into 16 buckets of 16 values each.
const quantum = 16

// DominantColors returns up to count of the most common colors in img, most
// common first.
//
// Each channel is quantized down to a multiple of 16 before counting, so
// #F0F0F0 and #FAFAFA count as the same color. Ties are ordered by hex.
// When region is non-nil only the part of it inside the image is analysed.
func DominantColors(img image.Image, count int, region *Region) ([]ColorFrequency, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds := img.Bounds()
	if region != nil {
		if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
			return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
		}
		bounds = image.Rect(region.X1, region.Y1, region.X2, region.Y2).Intersect(bounds)
		if bounds.Empty() {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) does not overlap the image",
				region.X1, region.Y1, region.X2, region.Y2)
		}
	}

	counts := make(map[colorconv.RGB]int)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := colorconv.FromColor(img.At(x, y))
			c.R, c.G, c.B = c.R/quantum*quantum, c.G/quantum*quantum, c.B/quantum*quantum
			counts[c]++
		}
	}

	total := float64(bounds.Dx() * bounds.Dy())
	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        colorconv.RGBToHex(c),
			RGB:        c,
			Percentage: float64(n) / total * 100,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}
	return colors, nil
}
