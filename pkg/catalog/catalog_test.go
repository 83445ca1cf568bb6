package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/lucidex/pkg/builder"
)

// --- Helpers ---

func minimalValidCatalog() *Catalog {
	return &Catalog{
		Name:      "test",
		Version:   "1.0",
		Framework: "react",
		Categories: []Category{
			{Name: "Actions", Components: []string{"button"}},
		},
		Components: []Template{
			{
				ID:          "button",
				Type:        builder.TypeComponent,
				Name:        "Button",
				Category:    "Actions",
				Description: "A button",
				Props:       builder.NewProps("variant", "primary"),
			},
		},
	}
}

func writeCatalog(t *testing.T, c *Catalog) string {
	t.Helper()
	data, err := json.Marshal(c)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "components.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// --- Validate ---

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, minimalValidCatalog().Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Catalog)
		want   string
	}{
		{"missing name", func(c *Catalog) { c.Name = "" }, "catalog name is required"},
		{"missing version", func(c *Catalog) { c.Version = "" }, "catalog version is required"},
		{"bad framework", func(c *Catalog) { c.Framework = "svelte" }, `unknown framework "svelte"`},
		{"empty category", func(c *Catalog) { c.Categories = append(c.Categories, Category{}) }, "categories[1]: name is required"},
		{"duplicate category", func(c *Catalog) { c.Categories = append(c.Categories, Category{Name: "Actions"}) }, "duplicate category name"},
		{"missing id", func(c *Catalog) { c.Components[0].ID = "" }, "components[0]: id is required"},
		{"timestamped id", func(c *Catalog) {
			c.Components[0].ID = "button-123"
			c.Categories[0].Components = []string{"button-123"}
		}, "must not end in -<digits>"},
		{"duplicate id", func(c *Catalog) { c.Components = append(c.Components, c.Components[0]) }, "duplicate id"},
		{"missing template name", func(c *Catalog) { c.Components[0].Name = "" }, "name is required"},
		{"bad type", func(c *Catalog) { c.Components[0].Type = "widget" }, `invalid type "widget"`},
		{"unknown category", func(c *Catalog) { c.Components[0].Category = "Nope" }, `unknown category "Nope"`},
		{"dangling category entry", func(c *Catalog) { c.Categories[0].Components = append(c.Categories[0].Components, "ghost") }, `non-existent component "ghost"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := minimalValidCatalog()
			tt.mutate(c)
			errs := c.Validate()
			require.NotEmpty(t, errs)

			assert.ErrorContains(t, errors.Join(errs...), tt.want)
		})
	}
}

// --- BuildIndex ---

func TestBuildIndex(t *testing.T) {
	c := minimalValidCatalog()
	idx := c.BuildIndex()

	tmpl, ok := idx.TemplateByID["button"]
	require.True(t, ok)
	assert.Same(t, &c.Components[0], tmpl)
	assert.Len(t, idx.TemplatesByCategory["Actions"], 1)
	assert.Contains(t, idx.CategoryByName, "Actions")
}

// --- Loading ---

func TestLoadFromFile(t *testing.T) {
	path := writeCatalog(t, minimalValidCatalog())
	cat, idx, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test", cat.Name)
	assert.Equal(t, "primary", idx.TemplateByID["button"].Props.String("variant"))
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog file")
}

func TestLoadFromBytes_Invalid(t *testing.T) {
	_, _, err := LoadFromBytes([]byte(`{"name":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse catalog JSON")

	_, _, err = LoadFromBytes([]byte(`{"name": "x"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog validation failed")
	assert.Contains(t, err.Error(), "catalog version is required")
}

func TestLoadDefault(t *testing.T) {
	cat, idx, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "qatar-gba", cat.Name)
	assert.Len(t, cat.Components, 10)
	assert.Len(t, cat.Categories, 4)

	card := idx.TemplateByID["card"]
	require.NotNil(t, card)
	assert.Equal(t, builder.TypeContainer, card.Type)
	assert.Equal(t, "lg", card.Props.String("padding"))
}
