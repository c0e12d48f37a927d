package swatch

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/color-tools-mcp/internal/colorconv"
)

const (
	// DefaultCellSize is the cell edge in pixels when Options.CellSize is 0.
	DefaultCellSize = 64
	// MaxScale bounds Options.Scale.
	MaxScale = 8
	// MaxColors bounds the number of cells in one swatch.
	MaxColors = 64
	// MaxCellSize bounds Options.CellSize.
	MaxCellSize = 1024
	// MaxPixels bounds the area of the final, scaled image.
	MaxPixels = 4096 * 4096

	// labels switch to black text above this lightness
	lightLabelThreshold = 55
	labelMargin         = 4
)

// Options controls the swatch layout. The zero value is usable.
type Options struct {
	CellSize int  // Cell width and height in pixels (0 = DefaultCellSize)
	Scale    int  // Integer upscale factor (0 = 1)
	NoLabels bool // Skip hex labels
}

// Result contains the rendered swatch.
type Result struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Colors      []string `json:"colors"`
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
}

// Render draws colors left to right and returns the PNG.
func Render(colors []colorconv.RGB, opts Options) (*Result, error) {
	img, err := Draw(colors, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	hexes := make([]string, len(colors))
	for i, c := range colors {
		hexes[i] = colorconv.RGBToHex(c)
	}

	return &Result{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		Colors:      hexes,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save renders colors and writes the PNG to path.
func Save(path string, colors []colorconv.RGB, opts Options) error {
	img, err := Draw(colors, opts)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to write swatch %s: %w", path, err)
	}
	return nil
}

// Draw renders colors into an in-memory image without encoding it.
func Draw(colors []colorconv.RGB, opts Options) (*image.NRGBA, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("swatch needs at least one color")
	}
	if len(colors) > MaxColors {
		return nil, fmt.Errorf("swatch supports at most %d colors, got %d", MaxColors, len(colors))
	}

	size := opts.CellSize
	if size == 0 {
		size = DefaultCellSize
	}
	if size < 0 || size > MaxCellSize {
		return nil, fmt.Errorf("cell size must be between 1 and %d, got %d", MaxCellSize, opts.CellSize)
	}

	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 || scale > MaxScale {
		return nil, fmt.Errorf("scale must be between 1 and %d, got %d", MaxScale, opts.Scale)
	}
	// each factor is bounded above, so the product cannot overflow
	if w, h := size*len(colors)*scale, size*scale; w*h > MaxPixels {
		return nil, fmt.Errorf("swatch of %dx%d pixels exceeds the %d pixel limit", w, h, MaxPixels)
	}

	canvas := imaging.New(size*len(colors), size, color.Transparent)
	for i, c := range colors {
		cell := imaging.New(size, size, c.Color())
		if !opts.NoLabels {
			drawLabel(cell, colorconv.RGBToHex(c), labelColor(c))
		}
		canvas = imaging.Paste(canvas, cell, image.Pt(i*size, 0))
	}

	if scale > 1 {
		canvas = imaging.Resize(canvas, canvas.Bounds().Dx()*scale, 0, imaging.NearestNeighbor)
	}
	return canvas, nil
}

// labelColor picks a label color that stays readable on c.
func labelColor(c colorconv.RGB) color.Color {
	if colorconv.RGBToHSL(c).L > lightLabelThreshold {
		return color.Black
	}
	return color.White
}

// drawLabel writes text centred near the bottom of cell. Cells too small for
// the text are left blank.
func drawLabel(cell *image.NRGBA, text string, fg color.Color) {
	face := basicfont.Face7x13
	b := cell.Bounds()
	width := font.MeasureString(face, text).Ceil()
	height := face.Metrics().Height.Ceil()
	if width+2*labelMargin > b.Dx() || height+2*labelMargin > b.Dy() {
		return
	}

	d := &font.Drawer{
		Dst:  cell,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P((b.Dx()-width)/2, b.Dy()-labelMargin-face.Metrics().Descent.Ceil()),
	}
	d.DrawString(text)
}
