package theme

import (
	"fmt"
	"strings"
)

// DarkSelector scopes the dark-mode variable block.
const DarkSelector = `[data-theme="dark"]`

// varName builds a CSS custom property name, applying the config prefix.
func varName(prefix string, parts ...string) string {
	name := "--"
	if prefix != "" {
		name += prefix + "-"
	}
	return name + strings.Join(parts, "-")
}

type cssWriter struct {
	b      strings.Builder
	prefix string
	first  bool
}

func (w *cssWriter) section(title string) {
	if !w.first {
		w.b.WriteString("\n")
	}
	w.first = false
	fmt.Fprintf(&w.b, "  /* %s */\n", title)
}

func (w *cssWriter) decl(value string, parts ...string) {
	fmt.Fprintf(&w.b, "  %s: %s;\n", varName(w.prefix, parts...), value)
}

func (w *cssWriter) scale(title, group string, s *Scale) {
	if s.Len() == 0 {
		return
	}
	w.section(title)
	s.Each(func(k, v string) { w.decl(v, group, k) })
}

// GenerateCSS renders the :root variable block and, when config.DarkMode is
// set, a dark block. Output order follows the declaration order of config.
//
// The dark block maps each shade to the value at the mirrored position of
// the ramp: 50 takes 950's value, 100 takes 900's, and so on.
func GenerateCSS(tokens []*ColorToken, config *ThemeConfig) string {
	w := &cssWriter{prefix: config.Prefix, first: true}
	w.b.WriteString(":root {\n")

	if len(tokens) > 0 {
		w.section("Colors")
		for _, t := range tokens {
			w.decl(t.Base, "color", t.Name)
			w.decl(t.RGB.CSS(), "color", t.Name, "rgb")
			w.decl(t.HSL.CSS(), "color", t.Name, "hsl")
			for _, v := range t.Variants {
				w.decl(v.Value, "color", t.Name, v.Name)
			}
		}
	}

	typo := config.Typography
	if typo.FontFamily.Len()+typo.FontSize.Len()+typo.FontWeight.Len()+typo.LineHeight.Len() > 0 {
		w.section("Typography")
		typo.FontFamily.Each(func(k, v string) { w.decl(v, "font", k) })
		typo.FontSize.Each(func(k, v string) { w.decl(v, "font-size", k) })
		typo.FontWeight.Each(func(k, v string) { w.decl(v, "font-weight", k) })
		typo.LineHeight.Each(func(k, v string) { w.decl(v, "line-height", k) })
	}

	w.scale("Spacing", "spacing", config.Spacing)
	w.scale("Border Radius", "radius", config.BorderRadius)
	w.scale("Shadows", "shadow", config.Shadows)
	w.scale("Breakpoints", "breakpoint", config.Breakpoints)

	w.b.WriteString("}\n")

	if config.DarkMode && len(tokens) > 0 {
		w.b.WriteString("\n" + DarkSelector + " {\n")
		for _, t := range tokens {
			n := len(t.Variants)
			for i, v := range t.Variants {
				w.decl(t.Variants[n-1-i].Value, "color", t.Name, v.Name)
			}
		}
		w.b.WriteString("}\n")
	}

	return w.b.String()
}
