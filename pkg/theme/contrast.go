package theme

import "math"

// WCAG 2.1 contrast thresholds.
const (
	ContrastAAA     = 7.0
	ContrastAA      = 4.5
	ContrastAALarge = 3.0
	linearThreshold = 0.03928
	luminanceOffset = 0.05
)

// RelativeLuminance implements the WCAG 2.1 relative luminance of an sRGB color.
func RelativeLuminance(c RGB) float64 {
	linear := func(v int) float64 {
		s := float64(v) / 255
		if s <= linearThreshold {
			return s / 12.92
		}
		return math.Pow((s+0.055)/1.055, 2.4)
	}
	return 0.2126*linear(c.R) + 0.7152*linear(c.G) + 0.0722*linear(c.B)
}

// CalculateContrastRatio returns (L1 + 0.05) / (L2 + 0.05) where L1 is the
// lighter of the two luminances. The result lies in [1, 21] and does not
// depend on argument order.
func CalculateContrastRatio(color1, color2 string) (float64, error) {
	a, err := HexToRGB(color1)
	if err != nil {
		return 0, err
	}
	b, err := HexToRGB(color2)
	if err != nil {
		return 0, err
	}

	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	lighter, darker := math.Max(l1, l2), math.Min(l1, l2)
	return (lighter + luminanceOffset) / (darker + luminanceOffset), nil
}

// WCAGLevel grades a contrast ratio for normal-size text.
func WCAGLevel(ratio float64) string {
	switch {
	case ratio >= ContrastAAA:
		return "AAA"
	case ratio >= ContrastAA:
		return "AA"
	case ratio >= ContrastAALarge:
		return "AA Large"
	default:
		return "Fail"
	}
}
