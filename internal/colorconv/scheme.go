package colorconv

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex string `json:"hex"` // Hex format "#rrggbb"
	RGB RGB    `json:"rgb"` // RGB components
	HSL HSL    `json:"hsl"` // HSL representation
}

// SchemeResult groups the hue-wheel relatives of a base color.
type SchemeResult struct {
	Base          ColorResult    `json:"base"`
	Complementary ColorResult    `json:"complementary"`
	Triadic       [2]ColorResult `json:"triadic"`
	Tetradic      [3]ColorResult `json:"tetradic"`
}

// Describe returns rgb as hex, RGB and HSL.
func Describe(rgb RGB) ColorResult {
	rgb = rgb.Clamp()
	return ColorResult{
		Hex: RGBToHex(rgb),
		RGB: rgb,
		HSL: RGBToHSL(rgb),
	}
}

// Scheme derives the complementary, triadic and tetradic colors of rgb.
func Scheme(rgb RGB) SchemeResult {
	rgb = rgb.Clamp()
	tri := Triadic(rgb)
	tet := Tetradic(rgb)
	return SchemeResult{
		Base:          Describe(rgb),
		Complementary: Describe(Complementary(rgb)),
		Triadic:       [2]ColorResult{Describe(tri[0]), Describe(tri[1])},
		Tetradic:      [3]ColorResult{Describe(tet[0]), Describe(tet[1]), Describe(tet[2])},
	}
}

// Colors flattens the scheme into a slice, base first.
func (s SchemeResult) Colors() []RGB {
	out := []RGB{s.Base.RGB, s.Complementary.RGB}
	for _, c := range s.Triadic {
		out = append(out, c.RGB)
	}
	for _, c := range s.Tetradic {
		out = append(out, c.RGB)
	}
	return out
}
