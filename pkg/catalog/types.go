package catalog

import "github.com/gnana997/lucidex/pkg/builder"

// Template is a component the layout builder can place. Props are the
// defaults a placed copy starts with.
type Template struct {
	ID          string                `json:"id"`
	Type        builder.ComponentType `json:"type"`
	Name        string                `json:"name"`
	Category    string                `json:"category"`
	Description string                `json:"description,omitempty"`
	Props       *builder.Props        `json:"props,omitempty"`
	Tags        []string              `json:"tags,omitempty"`
}

// Category groups templates for the palette.
type Category struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Components  []string `json:"components"`
}
