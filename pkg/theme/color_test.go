package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	rgb, err := HexToRGB("#8A1538")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 138, G: 21, B: 56}, rgb)

	noHash, err := HexToRGB("8a1538")
	require.NoError(t, err)
	assert.Equal(t, rgb, noHash)
}

func TestHexToRGB_Invalid(t *testing.T) {
	for _, in := range []string{"notacolor", "#12", "#FFF", "#12345g", "##123456", "#1234567", ""} {
		t.Run(in, func(t *testing.T) {
			_, err := HexToRGB(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidHex)
			assert.Contains(t, err.Error(), "invalid hex color")
		})
	}
}

func TestHexToHSL_Invalid(t *testing.T) {
	_, err := HexToHSL("notacolor")
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		hex  string
		want HSL
	}{
		{"#000000", HSL{0, 0, 0}},
		{"#ffffff", HSL{0, 0, 100}},
		{"#ff0000", HSL{0, 100, 50}},
		{"#00ff00", HSL{120, 100, 50}},
		{"#0000ff", HSL{240, 100, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := HexToHSL(tt.hex)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.H, got.H, 1e-9)
			assert.InDelta(t, tt.want.S, got.S, 1e-9)
			assert.InDelta(t, tt.want.L, got.L, 1e-9)
		})
	}
}

func TestHSLToHex(t *testing.T) {
	assert.Equal(t, "#ff0000", HSLToHex(HSL{0, 100, 50}))
	assert.Equal(t, "#00ff00", HSLToHex(HSL{120, 100, 50}))
	assert.Equal(t, "#ff8000", HSLToHex(HSL{30, 100, 50}))
	assert.Equal(t, "#ff0000", HSLToHex(HSL{360, 100, 50}), "hue wraps")
	assert.Equal(t, "#ffffff", HSLToHex(HSL{0, 150, 120}), "s and l clamp")
}

func TestHSLRoundTrip(t *testing.T) {
	for _, in := range []string{"#8A1538", "#c5a572", "#737373", "#15803d", "#010203", "#fefefe", "#123456", "#abcdef"} {
		t.Run(in, func(t *testing.T) {
			want, err := HexToRGB(in)
			require.NoError(t, err)
			hsl, err := HexToHSL(in)
			require.NoError(t, err)
			got, err := HexToRGB(HSLToHex(hsl))
			require.NoError(t, err)
			assert.InDelta(t, want.R, got.R, 1)
			assert.InDelta(t, want.G, got.G, 1)
			assert.InDelta(t, want.B, got.B, 1)
		})
	}
}

func TestCSSTriples(t *testing.T) {
	assert.Equal(t, "0 100% 50%", HSL{0, 100, 50}.CSS())
	assert.Equal(t, "343 74% 31%", HSL{342.6, 73.6, 31.2}.CSS())
	assert.Equal(t, "138, 21, 56", RGB{138, 21, 56}.CSS())
}
