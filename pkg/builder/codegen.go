package builder

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Framework selects the dialect of GenerateCode.
type Framework string

const (
	FrameworkReact      Framework = "react"
	FrameworkNextJS     Framework = "nextjs"
	FrameworkTypeScript Framework = "typescript"
	FrameworkHTML       Framework = "html"
	FrameworkBlazor     Framework = "blazor"
)

// Frameworks lists the supported dialects.
var Frameworks = []Framework{FrameworkReact, FrameworkNextJS, FrameworkTypeScript, FrameworkHTML, FrameworkBlazor}

// ParseFramework maps a name to a Framework; unknown names are react.
func ParseFramework(name string) Framework {
	f := Framework(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Frameworks {
		if f == known {
			return f
		}
	}
	return FrameworkReact
}

// IsJSX reports whether the dialect uses className and brace expressions.
func (f Framework) IsJSX() bool {
	return f == FrameworkReact || f == FrameworkNextJS || f == FrameworkTypeScript
}

const indentUnit = "  "

var timestampSuffix = regexp.MustCompile(`-\d+$`)

// BaseID strips the "-<digits>" suffix minted by AddComponent.
func BaseID(id string) string {
	return timestampSuffix.ReplaceAllString(id, "")
}

// layoutClasses are the class fragments contributed by well-known template ids.
var layoutClasses = map[string]string{
	"grid":    "grid",
	"flex":    "flex",
	"stack":   "flex flex-col",
	"card":    "card",
	"section": "section",
}

// tagFor picks the element: layout primitives become div or section, anything
// else renders as a component named after the node.
func tagFor(n *DroppableComponent) string {
	switch BaseID(n.ID) {
	case "container", "grid", "flex", "stack", "card":
		return "div"
	case "section":
		return "section"
	}
	name := n.Name
	if name == "" {
		name = BaseID(n.ID)
	}
	return pascalCase(name)
}

func isElement(tag string) bool {
	return tag == "div" || tag == "section"
}

// classNames derives the class list: "container" for container-typed nodes,
// the template's layout classes, p-<padding>, gap-<gap>, then the className
// prop. Duplicates keep their first position.
func classNames(n *DroppableComponent) string {
	var parts []string
	if n.Type == TypeContainer {
		parts = append(parts, "container")
	}
	if c, ok := layoutClasses[BaseID(n.ID)]; ok {
		parts = append(parts, c)
	}
	if p := n.Props.String("padding"); p != "" {
		parts = append(parts, "p-"+p)
	}
	if g := n.Props.String("gap"); g != "" {
		parts = append(parts, "gap-"+g)
	}
	if cn := n.Props.String("className"); cn != "" {
		parts = append(parts, cn)
	}

	seen := map[string]bool{}
	var out []string
	for _, f := range strings.Fields(strings.Join(parts, " ")) {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return strings.Join(out, " ")
}

// attributes serializes props other than className and children: strings
// quoted, true as a bare name, false omitted, anything else as JSON.
func attributes(n *DroppableComponent, f Framework) string {
	var b strings.Builder
	n.Props.Each(func(k string, v any) {
		if k == "className" || k == "children" {
			return
		}
		switch val := v.(type) {
		case string:
			fmt.Fprintf(&b, ` %s="%s"`, k, escapeAttr(val))
		case bool:
			if val {
				b.WriteString(" " + k)
			}
		default:
			data, err := json.Marshal(val)
			if err != nil {
				return
			}
			if f.IsJSX() {
				fmt.Fprintf(&b, " %s={%s}", k, data)
			} else {
				fmt.Fprintf(&b, " %s='%s'", k, strings.ReplaceAll(string(data), "'", "&#39;"))
			}
		}
	})
	return b.String()
}

func escapeAttr(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}

func pascalCase(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func writeNode(b *strings.Builder, n *DroppableComponent, depth int, f Framework) {
	indent := strings.Repeat(indentUnit, depth)
	tag := tagFor(n)

	classAttr := "class"
	if f.IsJSX() {
		classAttr = "className"
	}
	open := "<" + tag
	if cls := classNames(n); cls != "" {
		open += fmt.Sprintf(` %s="%s"`, classAttr, cls)
	}
	open += attributes(n, f)

	switch {
	case len(n.Children) > 0:
		b.WriteString(indent + open + ">\n")
		for _, c := range n.Children {
			writeNode(b, c, depth+1, f)
		}
		b.WriteString(indent + "</" + tag + ">\n")
	case isElement(tag) || f == FrameworkHTML:
		b.WriteString(indent + open + "></" + tag + ">\n")
	default:
		b.WriteString(indent + open + " />\n")
	}
}

// GenerateCode renders the canvas zone as source text in framework's dialect.
func (b *Builder) GenerateCode(framework Framework) string {
	var nodes []*DroppableComponent
	if canvas := b.Zone(CanvasZoneID); canvas != nil {
		nodes = canvas.Children
	}
	return RenderCode(nodes, framework)
}

// RenderCode renders nodes wrapped in a layout container for framework.
func RenderCode(nodes []*DroppableComponent, framework Framework) string {
	f := ParseFramework(string(framework))
	var body strings.Builder

	wrap := func(depth int) {
		indent := strings.Repeat(indentUnit, depth)
		classAttr := "class"
		if f.IsJSX() {
			classAttr = "className"
		}
		fmt.Fprintf(&body, "%s<div %s=\"layout-container\">\n", indent, classAttr)
		for _, n := range nodes {
			writeNode(&body, n, depth+1, f)
		}
		body.WriteString(indent + "</div>\n")
	}

	switch f {
	case FrameworkHTML:
		body.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n" +
			"  <meta charset=\"UTF-8\">\n" +
			"  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n" +
			"  <title>Layout</title>\n</head>\n<body>\n")
		wrap(1)
		body.WriteString("</body>\n</html>\n")
	case FrameworkBlazor:
		body.WriteString("@page \"/layout\"\n\n")
		wrap(0)
	case FrameworkNextJS:
		body.WriteString("export default function Page() {\n  return (\n")
		wrap(2)
		body.WriteString("  );\n}\n")
	case FrameworkTypeScript:
		body.WriteString("import React from 'react';\n\nconst Layout: React.FC = () => {\n  return (\n")
		wrap(2)
		body.WriteString("  );\n};\n\nexport default Layout;\n")
	default:
		body.WriteString("import React from 'react';\n\nexport default function Layout() {\n  return (\n")
		wrap(2)
		body.WriteString("  );\n}\n")
	}
	return body.String()
}
