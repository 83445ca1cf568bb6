// Package theme converts base colors into shade ramps and emits CSS
// variables, a Tailwind config and Figma (Tokens Studio) exports.
package theme

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ErrInvalidHex is returned for any string that is not a 6-digit hex color.
var ErrInvalidHex = errors.New("invalid hex color")

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// RGB is an 8-bit sRGB color.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness in percent [0,100].
// Values are not rounded; CSS output rounds them.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// IsValidHex reports whether s is a strict 6-digit hex color.
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// HexToRGB parses "#rrggbb" or "rrggbb". Short forms and other lengths fail.
func HexToRGB(hex string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	channel := func(s string) int {
		v, _ := strconv.ParseUint(s, 16, 8)
		return int(v)
	}
	return RGB{R: channel(m[1]), G: channel(m[2]), B: channel(m[3])}, nil
}

// HexToHSL parses a hex color and converts it to HSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// RGBToHSL converts sRGB to HSL.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return HSL{H: h * 60, S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL to sRGB, clamping saturation and lightness to [0,100]
// and wrapping hue into [0,360).
func HSLToRGB(c HSL) RGB {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s := clamp(c.S, 0, 100) / 100
	l := clamp(c.L, 0, 100) / 100

	a := s * math.Min(l, 1-l)
	f := func(n float64) int {
		k := math.Mod(n+h/30, 12)
		v := l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		return int(math.Round(v * 255))
	}
	return RGB{R: f(0), G: f(8), B: f(4)}
}

// HSLToHex converts HSL to a lowercase "#rrggbb" string.
func HSLToHex(c HSL) string {
	return RGBToHex(HSLToRGB(c))
}

// RGBToHex formats a color as lowercase "#rrggbb". Channels are clamped to [0,255].
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", clampInt(c.R), clampInt(c.G), clampInt(c.B))
}

// CSS returns the space-separated "h s% l%" triple used by CSS hsl().
func (c HSL) CSS() string {
	return fmt.Sprintf("%d %d%% %d%%", int(math.Round(c.H)), int(math.Round(c.S)), int(math.Round(c.L)))
}

// CSS returns the comma-separated "r, g, b" triple used by CSS rgb().
func (c RGB) CSS() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
