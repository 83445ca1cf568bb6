package theme

import "math"

// ShadeNames is the fixed 11-step ramp, lightest first.
var ShadeNames = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// baseShadeIndex is the position of "500", which always holds the base color.
const baseShadeIndex = 5

// minLightness keeps generated dark shades from collapsing to black.
const minLightness = 5

// maxAccessibleSaturation caps the saturation boost of accessible palettes.
const maxAccessibleSaturation = 95

// ColorVariant is one shade of a ramp.
type ColorVariant struct {
	Name      string  `json:"name"`
	Value     string  `json:"value"`
	Lightness float64 `json:"lightness"`
}

// ColorToken is a named base color with its shade ramp.
type ColorToken struct {
	Name     string         `json:"name"`
	Base     string         `json:"base"`
	RGB      RGB            `json:"rgb"`
	HSL      HSL            `json:"hsl"`
	Variants []ColorVariant `json:"variants"`
}

// Variant returns the shade with the given name.
func (t *ColorToken) Variant(name string) (ColorVariant, bool) {
	for _, v := range t.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return ColorVariant{}, false
}

// GenerateColorVariants builds the 11-step ramp for baseColor.
//
// Hue and saturation come from the base; lightness follows the schedule
// 95,90,80,70,60,l,l-10,l-20,l-30,l-40,l-45 with every step floored at 5.
// Shade 500 is the input string itself, not a round-tripped value.
func GenerateColorVariants(baseColor, name string) (*ColorToken, error) {
	rgb, err := HexToRGB(baseColor)
	if err != nil {
		return nil, err
	}
	hsl := RGBToHSL(rgb)
	l := hsl.L

	schedule := []float64{95, 90, 80, 70, 60, l, l - 10, l - 20, l - 30, l - 40, l - 45}
	variants := make([]ColorVariant, len(ShadeNames))
	for i, shade := range ShadeNames {
		if i == baseShadeIndex {
			variants[i] = ColorVariant{Name: shade, Value: baseColor, Lightness: l}
			continue
		}
		target := math.Max(schedule[i], minLightness)
		variants[i] = ColorVariant{
			Name:      shade,
			Value:     HSLToHex(HSL{H: hsl.H, S: hsl.S, L: target}),
			Lightness: target,
		}
	}

	return &ColorToken{Name: name, Base: baseColor, RGB: rgb, HSL: hsl, Variants: variants}, nil
}

// GenerateAccessiblePalette builds a ramp that keeps contrast at the dark end:
// lightness follows 97,92,82,72,62,l,l-15≥25,l-25≥20,l-35≥15,l-45≥10,l-50≥5
// and saturation rises by 5 points per step past 500, capped at 95.
func GenerateAccessiblePalette(baseColor string) (*ColorToken, error) {
	rgb, err := HexToRGB(baseColor)
	if err != nil {
		return nil, err
	}
	hsl := RGBToHSL(rgb)
	l := hsl.L

	schedule := []float64{
		97, 92, 82, 72, 62,
		l,
		math.Max(l-15, 25),
		math.Max(l-25, 20),
		math.Max(l-35, 15),
		math.Max(l-45, 10),
		math.Max(l-50, 5),
	}

	variants := make([]ColorVariant, len(ShadeNames))
	for i, shade := range ShadeNames {
		if i == baseShadeIndex {
			variants[i] = ColorVariant{Name: shade, Value: baseColor, Lightness: l}
			continue
		}
		sat := hsl.S
		if i > baseShadeIndex {
			sat += float64(i-baseShadeIndex) * 5
		}
		sat = math.Min(sat, maxAccessibleSaturation)
		variants[i] = ColorVariant{
			Name:      shade,
			Value:     HSLToHex(HSL{H: hsl.H, S: sat, L: schedule[i]}),
			Lightness: schedule[i],
		}
	}

	return &ColorToken{Name: "accessible", Base: baseColor, RGB: rgb, HSL: hsl, Variants: variants}, nil
}

// HarmonyColor is one color related to a base by a hue rotation.
type HarmonyColor struct {
	Name  string  `json:"name"`
	Hue   float64 `json:"hue"`
	Value string  `json:"value"`
}

// harmonies lists the hue rotations of GenerateComplementaryColors.
var harmonies = []struct {
	name   string
	offset float64
}{
	{"complementary", 180},
	{"triadic-1", 120},
	{"triadic-2", -120},
	{"analogous-1", 30},
	{"analogous-2", -30},
}

// GenerateComplementaryColors returns the complementary, two triadic and two
// analogous hues of baseColor at its saturation and lightness.
func GenerateComplementaryColors(baseColor string) ([]HarmonyColor, error) {
	hsl, err := HexToHSL(baseColor)
	if err != nil {
		return nil, err
	}

	colors := make([]HarmonyColor, 0, len(harmonies))
	for _, h := range harmonies {
		hue := math.Mod(hsl.H+h.offset+360, 360)
		colors = append(colors, HarmonyColor{
			Name:  h.name,
			Hue:   hue,
			Value: HSLToHex(HSL{H: hue, S: hsl.S, L: hsl.L}),
		})
	}
	return colors, nil
}
