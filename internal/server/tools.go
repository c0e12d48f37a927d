package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// rgbSchema describes an {"r","g","b"} object.
func rgbSchema(description string) map[string]interface{} {
	channel := func(name string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "integer",
			"minimum":     0,
			"maximum":     255,
			"description": name + " channel (0-255)",
		}
	}
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"r": channel("Red"),
			"g": channel("Green"),
			"b": channel("Blue"),
		},
		"required": []string{"r", "g", "b"},
	}
}

// colorProperties are the "hex" / "rgb" alternatives accepted by every color tool.
func colorProperties() map[string]interface{} {
	return map[string]interface{}{
		"hex": map[string]interface{}{
			"type":        "string",
			"description": "Color as hex, e.g. \"#ff8040\" (leading # optional). Ignored when rgb is given.",
		},
		"rgb": rgbSchema("Color as RGB channels"),
	}
}

// colorSchema is an object schema taking a single color plus extra properties.
func colorSchema(extra map[string]interface{}, required ...string) map[string]interface{} {
	props := colorProperties()
	for k, v := range extra {
		props[k] = v
	}
	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func percentSchema(verb string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"minimum":     0,
		"maximum":     100,
		"description": "Percentage of full scale (0-100) to " + verb + " each channel by",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversion
		{
			Name:        "color_hex_to_rgb",
			Description: "Parse a 6-digit hex color (optional #, case-insensitive) and return it as hex, RGB and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex color such as \"#ff0000\" or \"FF0000\"",
					},
				},
				"required": []string{"hex"},
			},
		},
		{
			Name:        "color_rgb_to_hex",
			Description: "Format RGB channels as a lowercase #rrggbb string.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"rgb": rgbSchema("Color to format"),
				},
				"required": []string{"rgb"},
			},
		},
		{
			Name:        "color_rgb_to_hsl",
			Description: "Convert a color to HSL. Hue is a whole degree in [0,360); saturation and lightness are percentages with one decimal.",
			InputSchema: colorSchema(nil),
		},
		{
			Name:        "color_hsl_to_rgb",
			Description: "Convert HSL to RGB. Hue is taken modulo 360.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"h": map[string]interface{}{
						"type":        "number",
						"description": "Hue in degrees",
					},
					"s": map[string]interface{}{
						"type":        "number",
						"minimum":     0,
						"maximum":     100,
						"description": "Saturation percentage (0-100)",
					},
					"l": map[string]interface{}{
						"type":        "number",
						"minimum":     0,
						"maximum":     100,
						"description": "Lightness percentage (0-100)",
					},
				},
				"required": []string{"h", "s", "l"},
			},
		},

		// Brightness
		{
			Name:        "color_lighten",
			Description: "Lighten a color by adding a percentage of full scale to every channel (capped at 255).",
			InputSchema: colorSchema(map[string]interface{}{"percent": percentSchema("raise")}, "percent"),
		},
		{
			Name:        "color_darken",
			Description: "Darken a color by subtracting a percentage of full scale from every channel (floored at 0).",
			InputSchema: colorSchema(map[string]interface{}{"percent": percentSchema("lower")}, "percent"),
		},

		// Hue wheel
		{
			Name:        "color_complementary",
			Description: "Return the color opposite on the hue wheel (+180°). Black and white map to each other.",
			InputSchema: colorSchema(nil),
		},
		{
			Name:        "color_triadic",
			Description: "Return the two triadic colors (+120° and +240°) with the same saturation and lightness.",
			InputSchema: colorSchema(nil),
		},
		{
			Name:        "color_tetradic",
			Description: "Return the three tetradic colors (+90°, +180°, +270°) with the same saturation and lightness.",
			InputSchema: colorSchema(nil),
		},
		{
			Name:        "color_scheme",
			Description: "Return a color together with its complementary, triadic and tetradic colors, each as hex, RGB and HSL.",
			InputSchema: colorSchema(nil),
		},

		// Analysis and output
		{
			Name:        "color_distance",
			Description: "Measure the difference between two colors (CIEDE2000, CIE Lab and RGB euclidean distance).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"from": map[string]interface{}{
						"type":        "object",
						"description": "First color: {\"hex\": ...} or {\"rgb\": {...}}",
						"properties":  colorProperties(),
					},
					"to": map[string]interface{}{
						"type":        "object",
						"description": "Second color: {\"hex\": ...} or {\"rgb\": {...}}",
						"properties":  colorProperties(),
					},
				},
				"required": []string{"from", "to"},
			},
		},
		{
			Name:        "color_swatch",
			Description: "Render colors as a horizontal strip of labelled cells and return it as base64-encoded PNG. Give either colors or scheme_of.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"description": "Colors to draw, each {\"hex\": ...} or {\"rgb\": {...}}",
						"items": map[string]interface{}{
							"type":       "object",
							"properties": colorProperties(),
						},
					},
					"scheme_of": map[string]interface{}{
						"type":        "object",
						"description": "Draw the full scheme (base, complementary, triadic, tetradic) of this color instead",
						"properties":  colorProperties(),
					},
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Cell edge in pixels (1-1024). Default from server config (64)",
					},
					"scale": map[string]interface{}{
						"type":        "integer",
						"description": "Integer upscale factor (1-8). Default 1",
					},
					"labels": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw hex labels. Default true",
						"default":     true,
					},
				},
			},
		},
		{
			Name:        "color_sample_image",
			Description: "Read the colors at one or more pixel coordinates of a PNG, JPEG or GIF file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Coordinates to sample (0-based, origin top-left)",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "color_dominant_colors",
			Description: "Extract the most common colors of an image (channels quantized to multiples of 16), most common first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional region; (x1,y1) inclusive, (x2,y2) exclusive",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
