package theme

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ColorScale maps shade names (plus DEFAULT) to CSS variable references.
type ColorScale = orderedmap.OrderedMap[string, string]

// TailwindConfig is the JSON form of a tailwind.config theme. Every value
// references the CSS variables emitted by GenerateCSS, so dark mode works by
// swapping variables rather than classes.
type TailwindConfig struct {
	DarkMode []string      `json:"darkMode,omitempty"`
	Theme    TailwindTheme `json:"theme"`
}

// TailwindTheme wraps the extend block.
type TailwindTheme struct {
	Extend TailwindExtend `json:"extend"`
}

// TailwindExtend holds the generated scales.
type TailwindExtend struct {
	Colors       *orderedmap.OrderedMap[string, *ColorScale] `json:"colors"`
	FontFamily   *orderedmap.OrderedMap[string, []string]    `json:"fontFamily,omitempty"`
	FontSize     *Scale                                      `json:"fontSize,omitempty"`
	FontWeight   *Scale                                      `json:"fontWeight,omitempty"`
	LineHeight   *Scale                                      `json:"lineHeight,omitempty"`
	Spacing      *Scale                                      `json:"spacing,omitempty"`
	BorderRadius *Scale                                      `json:"borderRadius,omitempty"`
	BoxShadow    *Scale                                      `json:"boxShadow,omitempty"`
	Screens      *Scale                                      `json:"screens,omitempty"`
}

// GenerateTailwindConfig builds the Tailwind theme extension for tokens and config.
func GenerateTailwindConfig(tokens []*ColorToken, config *ThemeConfig) *TailwindConfig {
	p := config.Prefix
	ref := func(parts ...string) string {
		return fmt.Sprintf("var(%s)", varName(p, parts...))
	}

	colors := orderedmap.New[string, *ColorScale]()
	for _, t := range tokens {
		cs := orderedmap.New[string, string]()
		cs.Set("DEFAULT", ref("color", t.Name))
		for _, v := range t.Variants {
			cs.Set(v.Name, ref("color", t.Name, v.Name))
		}
		colors.Set(t.Name, cs)
	}

	refScale := func(s *Scale, group string) *Scale {
		if s.Len() == 0 {
			return nil
		}
		out := NewScale()
		s.Each(func(k, _ string) { out.Set(k, ref(group, k)) })
		return out
	}

	ext := TailwindExtend{
		Colors:       colors,
		FontSize:     refScale(config.Typography.FontSize, "font-size"),
		FontWeight:   refScale(config.Typography.FontWeight, "font-weight"),
		LineHeight:   refScale(config.Typography.LineHeight, "line-height"),
		Spacing:      refScale(config.Spacing, "spacing"),
		BorderRadius: refScale(config.BorderRadius, "radius"),
		BoxShadow:    refScale(config.Shadows, "shadow"),
	}

	// Media queries cannot read custom properties; screens keep raw values.
	if config.Breakpoints.Len() > 0 {
		ext.Screens = NewScale()
		config.Breakpoints.Each(func(k, v string) { ext.Screens.Set(k, v) })
	}

	if config.Typography.FontFamily.Len() > 0 {
		ext.FontFamily = orderedmap.New[string, []string]()
		config.Typography.FontFamily.Each(func(k, v string) {
			ext.FontFamily.Set(k, splitFontStack(v))
		})
	}

	cfg := &TailwindConfig{Theme: TailwindTheme{Extend: ext}}
	if config.DarkMode {
		cfg.DarkMode = []string{"selector", DarkSelector}
	}
	return cfg
}

func splitFontStack(stack string) []string {
	var fonts []string
	for _, f := range strings.Split(stack, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fonts = append(fonts, f)
		}
	}
	return fonts
}
