package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fortio.org/log"

	"github.com/ironsheep/color-tools-mcp/internal/colorconv"
	"github.com/ironsheep/color-tools-mcp/internal/sampler"
	"github.com/ironsheep/color-tools-mcp/internal/swatch"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_lighten").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.ExecuteTool(params.Name, params.Arguments)
	if err != nil {
		log.S(log.Warning, "Tool failed", log.Str("tool", params.Name), log.Any("err", err.Error()))
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}
	log.S(log.Info, "Tool call", log.Str("tool", params.Name), log.Any("elapsed", time.Since(start).String()))

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// ExecuteTool runs the named tool with JSON arguments and returns its result.
//
// Missing arguments are treated as an empty object.
func (s *Server) ExecuteTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 || string(args) == "null" {
		args = json.RawMessage("{}")
	}

	switch name {
	// Conversion
	case "color_hex_to_rgb":
		return s.handleHexToRGB(args)
	case "color_rgb_to_hex":
		return s.handleRGBToHex(args)
	case "color_rgb_to_hsl":
		return s.handleRGBToHSL(args)
	case "color_hsl_to_rgb":
		return s.handleHSLToRGB(args)

	// Brightness
	case "color_lighten":
		return s.handleBrightness(args, colorconv.Lighten)
	case "color_darken":
		return s.handleBrightness(args, colorconv.Darken)

	// Hue wheel
	case "color_complementary":
		return s.handleComplementary(args)
	case "color_triadic":
		return s.handleTriadic(args)
	case "color_tetradic":
		return s.handleTetradic(args)
	case "color_scheme":
		return s.handleScheme(args)

	// Analysis and output
	case "color_distance":
		return s.handleDistance(args)
	case "color_swatch":
		return s.handleSwatch(args)
	case "color_sample_image":
		return s.handleSampleImage(args)
	case "color_dominant_colors":
		return s.handleDominantColors(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

var errNoColor = errors.New("a color is required: give hex or rgb")

// colorArg is the hex-or-rgb color accepted by most tools.
type colorArg struct {
	Hex string         `json:"hex,omitempty"`
	RGB *colorconv.RGB `json:"rgb,omitempty"`
}

func (c colorArg) resolve() (colorconv.RGB, error) {
	if c.RGB != nil {
		if err := c.RGB.Validate(); err != nil {
			return colorconv.RGB{}, err
		}
		return *c.RGB, nil
	}
	if c.Hex == "" {
		return colorconv.RGB{}, errNoColor
	}
	return colorconv.HexToRGB(c.Hex)
}

func decodeColor(args json.RawMessage) (colorconv.RGB, error) {
	var a colorArg
	if err := json.Unmarshal(args, &a); err != nil {
		return colorconv.RGB{}, err
	}
	return a.resolve()
}

// === Conversion Handlers ===

func (s *Server) handleHexToRGB(args json.RawMessage) (interface{}, error) {
	var a struct {
		Hex *string `json:"hex"`
	}
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Hex == nil {
		return nil, fmt.Errorf("hex is required")
	}
	rgb, err := colorconv.HexToRGB(*a.Hex)
	if err != nil {
		return nil, err
	}
	return colorconv.Describe(rgb), nil
}

func (s *Server) handleRGBToHex(args json.RawMessage) (interface{}, error) {
	var a struct {
		RGB *colorconv.RGB `json:"rgb"`
	}
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.RGB == nil {
		return nil, fmt.Errorf("rgb is required")
	}
	if err := a.RGB.Validate(); err != nil {
		return nil, err
	}
	return colorconv.Describe(*a.RGB), nil
}

func (s *Server) handleRGBToHSL(args json.RawMessage) (interface{}, error) {
	rgb, err := decodeColor(args)
	if err != nil {
		return nil, err
	}
	return colorconv.Describe(rgb), nil
}

type hslArgs struct {
	H *float64 `json:"h"`
	S *float64 `json:"s"`
	L *float64 `json:"l"`
}

func (s *Server) handleHSLToRGB(args json.RawMessage) (interface{}, error) {
	var a hslArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.H == nil || a.S == nil || a.L == nil {
		return nil, fmt.Errorf("h, s and l are required")
	}
	for _, v := range []struct {
		name string
		val  float64
	}{{"s", *a.S}, {"l", *a.L}} {
		if v.val < 0 || v.val > 100 {
			return nil, fmt.Errorf("%s=%v must be between 0 and 100: %w", v.name, v.val, colorconv.ErrInvalidRange)
		}
	}
	rgb := colorconv.HSLToRGB(colorconv.HSL{H: *a.H, S: *a.S, L: *a.L})
	return colorconv.Describe(rgb), nil
}

// === Brightness Handlers ===

type brightnessArgs struct {
	colorArg
	Percent *float64 `json:"percent"`
}

func (s *Server) handleBrightness(args json.RawMessage, adjust func(colorconv.RGB, float64) (colorconv.RGB, error)) (interface{}, error) {
	var a brightnessArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Percent == nil {
		return nil, fmt.Errorf("percent is required")
	}
	rgb, err := a.resolve()
	if err != nil {
		return nil, err
	}
	out, err := adjust(rgb, *a.Percent)
	if err != nil {
		return nil, err
	}
	return colorconv.Describe(out), nil
}

// === Hue Wheel Handlers ===

// ColorsResult is a list of derived colors.
type ColorsResult struct {
	Base   colorconv.ColorResult   `json:"base"`
	Colors []colorconv.ColorResult `json:"colors"`
}

func describeAll(base colorconv.RGB, colors ...colorconv.RGB) *ColorsResult {
	out := &ColorsResult{Base: colorconv.Describe(base)}
	for _, c := range colors {
		out.Colors = append(out.Colors, colorconv.Describe(c))
	}
	return out
}

func (s *Server) handleComplementary(args json.RawMessage) (interface{}, error) {
	rgb, err := decodeColor(args)
	if err != nil {
		return nil, err
	}
	return describeAll(rgb, colorconv.Complementary(rgb)), nil
}

func (s *Server) handleTriadic(args json.RawMessage) (interface{}, error) {
	rgb, err := decodeColor(args)
	if err != nil {
		return nil, err
	}
	tri := colorconv.Triadic(rgb)
	return describeAll(rgb, tri[:]...), nil
}

func (s *Server) handleTetradic(args json.RawMessage) (interface{}, error) {
	rgb, err := decodeColor(args)
	if err != nil {
		return nil, err
	}
	tet := colorconv.Tetradic(rgb)
	return describeAll(rgb, tet[:]...), nil
}

func (s *Server) handleScheme(args json.RawMessage) (interface{}, error) {
	rgb, err := decodeColor(args)
	if err != nil {
		return nil, err
	}
	return colorconv.Scheme(rgb), nil
}

// === Analysis and Output Handlers ===

type distanceArgs struct {
	From *colorArg `json:"from"`
	To   *colorArg `json:"to"`
}

func (s *Server) handleDistance(args json.RawMessage) (interface{}, error) {
	var a distanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.From == nil || a.To == nil {
		return nil, fmt.Errorf("from and to are required")
	}
	from, err := a.From.resolve()
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	to, err := a.To.resolve()
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	return colorconv.Distance(from, to), nil
}

type swatchArgs struct {
	Colors   []colorArg `json:"colors"`
	SchemeOf *colorArg  `json:"scheme_of"`
	CellSize int        `json:"cell_size"`
	Scale    int        `json:"scale"`
	Labels   *bool      `json:"labels"`
}

func (s *Server) handleSwatch(args json.RawMessage) (interface{}, error) {
	var a swatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var colors []colorconv.RGB
	switch {
	case a.SchemeOf != nil:
		base, err := a.SchemeOf.resolve()
		if err != nil {
			return nil, fmt.Errorf("scheme_of: %w", err)
		}
		colors = colorconv.Scheme(base).Colors()
	default:
		for i, c := range a.Colors {
			rgb, err := c.resolve()
			if err != nil {
				return nil, fmt.Errorf("colors[%d]: %w", i, err)
			}
			colors = append(colors, rgb)
		}
	}

	opts := s.cfg.Swatch
	if a.CellSize != 0 {
		opts.CellSize = a.CellSize
	}
	if a.Scale != 0 {
		opts.Scale = a.Scale
	}
	if a.Labels != nil {
		opts.NoLabels = !*a.Labels
	}
	return swatch.Render(colors, opts)
}

type sampleImageArgs struct {
	Path   string          `json:"path"`
	Points []sampler.Point `json:"points"`
}

// SamplesResult holds the colors read from an image.
type SamplesResult struct {
	Samples []sampler.Sample `json:"samples"`
}

func (s *Server) handleSampleImage(args json.RawMessage) (interface{}, error) {
	var a sampleImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Points) == 0 {
		return nil, fmt.Errorf("at least one point is required")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	samples, err := sampler.SampleColors(img, a.Points)
	if err != nil {
		return nil, err
	}
	return &SamplesResult{Samples: samples}, nil
}

type dominantColorsArgs struct {
	Path   string          `json:"path"`
	Count  int             `json:"count"`
	Region *sampler.Region `json:"region,omitempty"`
}

// DominantColorsResult contains the most frequent colors, most common first.
type DominantColorsResult struct {
	Colors []sampler.ColorFrequency `json:"colors"`
}

func (s *Server) handleDominantColors(args json.RawMessage) (interface{}, error) {
	var a dominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	colors, err := sampler.DominantColors(img, a.Count, a.Region)
	if err != nil {
		return nil, err
	}
	return &DominantColorsResult{Colors: colors}, nil
}
