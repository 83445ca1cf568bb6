package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Typography groups the typographic scales of a theme.
type Typography struct {
	FontFamily *Scale `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	FontSize   *Scale `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	FontWeight *Scale `json:"fontWeight,omitempty" yaml:"fontWeight,omitempty"`
	LineHeight *Scale `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
}

// ThemeConfig is the input of GenerateTheme.
type ThemeConfig struct {
	Name         string     `json:"name" yaml:"name"`
	Prefix       string     `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Colors       *Scale     `json:"colors" yaml:"colors"`
	Typography   Typography `json:"typography" yaml:"typography"`
	Spacing      *Scale     `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	BorderRadius *Scale     `json:"borderRadius,omitempty" yaml:"borderRadius,omitempty"`
	Shadows      *Scale     `json:"shadows,omitempty" yaml:"shadows,omitempty"`
	Breakpoints  *Scale     `json:"breakpoints,omitempty" yaml:"breakpoints,omitempty"`
	DarkMode     bool       `json:"darkMode" yaml:"darkMode"`
}

var prefixPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Validate checks the config before generation.
func (c *ThemeConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Prefix, validation.Match(prefixPattern)),
		validation.Field(&c.Colors, validation.By(validColors)),
	)
}

func validColors(value interface{}) error {
	colors, _ := value.(*Scale)
	if colors.Len() == 0 {
		return errors.New("at least one color is required")
	}
	var errs []error
	colors.Each(func(name, hex string) {
		if !IsValidHex(hex) {
			errs = append(errs, fmt.Errorf("%s: %w: %q", name, ErrInvalidHex, hex))
		}
	})
	return errors.Join(errs...)
}

// ParseConfig decodes a theme config from YAML or JSON.
func ParseConfig(data []byte) (*ThemeConfig, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		// Tab-indented JSON is not valid YAML; compact it first.
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return nil, fmt.Errorf("parse theme config: %w", err)
		}
		data = buf.Bytes()
	}

	var cfg ThemeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse theme config: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFile reads and validates a theme config file.
func LoadConfigFile(path string) (*ThemeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultThemeConfig returns the built-in Qatar GBA theme.
func DefaultThemeConfig() *ThemeConfig {
	return &ThemeConfig{
		Name: "qatar-gba",
		Colors: NewScale(
			"primary", "#8A1538",
			"secondary", "#C5A572",
			"neutral", "#737373",
			"success", "#15803D",
			"warning", "#B45309",
			"error", "#B91C1C",
			"info", "#1D4ED8",
		),
		Typography: Typography{
			FontFamily: NewScale(
				"sans", "Inter, system-ui, sans-serif",
				"mono", "JetBrains Mono, monospace",
			),
			FontSize: NewScale(
				"sm", "0.875rem",
				"base", "1rem",
				"lg", "1.125rem",
				"2xl", "1.5rem",
				"4xl", "2.25rem",
			),
			FontWeight: NewScale("regular", "400", "medium", "500", "bold", "700"),
			LineHeight: NewScale("tight", "1.25", "normal", "1.5", "relaxed", "1.75"),
		},
		Spacing: NewScale(
			"xs", "0.25rem",
			"sm", "0.5rem",
			"md", "1rem",
			"lg", "1.5rem",
			"xl", "2rem",
		),
		BorderRadius: NewScale("sm", "0.125rem", "md", "0.375rem", "lg", "0.5rem", "full", "9999px"),
		Shadows: NewScale(
			"sm", "0 1px 2px 0 rgb(0 0 0 / 0.05)",
			"md", "0 4px 6px -1px rgb(0 0 0 / 0.1)",
			"lg", "0 10px 15px -3px rgb(0 0 0 / 0.1)",
		),
		Breakpoints: NewScale("sm", "640px", "md", "768px", "lg", "1024px", "xl", "1280px"),
		DarkMode:    true,
	}
}
