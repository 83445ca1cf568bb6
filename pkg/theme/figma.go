package theme

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FigmaToken is a Tokens Studio leaf.
type FigmaToken struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// FigmaGroup is a nested token group; values are *FigmaToken or *FigmaGroup.
type FigmaGroup = orderedmap.OrderedMap[string, any]

// FigmaMetadata lists token sets in application order.
type FigmaMetadata struct {
	TokenSetOrder []string `json:"tokenSetOrder"`
}

// FigmaTokens is a Tokens Studio export: token sets by name plus metadata.
type FigmaTokens struct {
	Sets     *orderedmap.OrderedMap[string, *FigmaGroup]
	Metadata FigmaMetadata
}

// MarshalJSON flattens the sets beside the "$metadata" key.
func (f *FigmaTokens) MarshalJSON() ([]byte, error) {
	out := orderedmap.New[string, any]()
	for pair := f.Sets.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, pair.Value)
	}
	out.Set("$metadata", f.Metadata)
	return out.MarshalJSON()
}

// Set returns the named token set.
func (f *FigmaTokens) Set(name string) (*FigmaGroup, bool) {
	return f.Sets.Get(name)
}

// GenerateFigmaTokens builds a "global" set from tokens and config, plus a
// "dark" set of color overrides when config.DarkMode is set.
func GenerateFigmaTokens(tokens []*ColorToken, config *ThemeConfig) *FigmaTokens {
	global := orderedmap.New[string, any]()

	colors := orderedmap.New[string, any]()
	for _, t := range tokens {
		shades := orderedmap.New[string, any]()
		for _, v := range t.Variants {
			shades.Set(v.Name, &FigmaToken{Value: v.Value, Type: "color"})
		}
		colors.Set(t.Name, shades)
	}
	global.Set("colors", colors)

	addScale := func(key, tokenType string, s *Scale) {
		if s.Len() == 0 {
			return
		}
		group := orderedmap.New[string, any]()
		s.Each(func(k, v string) { group.Set(k, &FigmaToken{Value: v, Type: tokenType}) })
		global.Set(key, group)
	}
	addScale("fontFamilies", "fontFamilies", config.Typography.FontFamily)
	addScale("fontSizes", "fontSizes", config.Typography.FontSize)
	addScale("fontWeights", "fontWeights", config.Typography.FontWeight)
	addScale("lineHeights", "lineHeights", config.Typography.LineHeight)
	addScale("spacing", "spacing", config.Spacing)
	addScale("borderRadius", "borderRadius", config.BorderRadius)
	addScale("boxShadow", "boxShadow", config.Shadows)
	addScale("breakpoints", "sizing", config.Breakpoints)

	sets := orderedmap.New[string, *FigmaGroup]()
	sets.Set("global", global)
	order := []string{"global"}

	if config.DarkMode && len(tokens) > 0 {
		darkColors := orderedmap.New[string, any]()
		for _, t := range tokens {
			n := len(t.Variants)
			shades := orderedmap.New[string, any]()
			for i, v := range t.Variants {
				shades.Set(v.Name, &FigmaToken{Value: t.Variants[n-1-i].Value, Type: "color"})
			}
			darkColors.Set(t.Name, shades)
		}
		dark := orderedmap.New[string, any]()
		dark.Set("colors", darkColors)
		sets.Set("dark", dark)
		order = append(order, "dark")
	}

	return &FigmaTokens{Sets: sets, Metadata: FigmaMetadata{TokenSetOrder: order}}
}
