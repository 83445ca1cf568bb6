// Package catalog loads the builder's template catalog and answers queries
// over it.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gnana997/lucidex/catalogs"
	"github.com/gnana997/lucidex/pkg/builder"
	"github.com/gnana997/lucidex/pkg/util"
)

// Catalog is a named, versioned set of templates.
type Catalog struct {
	Name       string     `json:"name"`
	Version    string     `json:"version"`
	Framework  string     `json:"framework,omitempty"`
	Categories []Category `json:"categories"`
	Components []Template `json:"components"`
}

// CatalogIndex provides O(1) lookups into the catalog.
type CatalogIndex struct {
	TemplateByID        map[string]*Template
	CategoryByName      map[string]*Category
	TemplatesByCategory map[string][]*Template
}

var validTypes = map[builder.ComponentType]bool{
	builder.TypeComponent: true,
	builder.TypeContainer: true,
	builder.TypeLayout:    true,
}

// Validate checks the catalog for internal consistency and returns every
// problem found.
func (c *Catalog) Validate() []error {
	var errs []error

	if c.Name == "" {
		errs = append(errs, fmt.Errorf("catalog name is required"))
	}
	if c.Version == "" {
		errs = append(errs, fmt.Errorf("catalog version is required"))
	}
	if c.Framework != "" && builder.ParseFramework(c.Framework) != builder.Framework(c.Framework) {
		errs = append(errs, fmt.Errorf("unknown framework %q", c.Framework))
	}

	categoryNames := make(map[string]bool, len(c.Categories))
	for i, cat := range c.Categories {
		if cat.Name == "" {
			errs = append(errs, fmt.Errorf("categories[%d]: name is required", i))
			continue
		}
		if categoryNames[cat.Name] {
			errs = append(errs, fmt.Errorf("categories[%d]: duplicate category name %q", i, cat.Name))
			continue
		}
		categoryNames[cat.Name] = true
	}

	ids := make(map[string]bool, len(c.Components))
	for i, tmpl := range c.Components {
		if tmpl.ID == "" {
			errs = append(errs, fmt.Errorf("components[%d]: id is required", i))
			continue
		}
		if builder.BaseID(tmpl.ID) != tmpl.ID {
			errs = append(errs, fmt.Errorf("component %q: id must not end in -<digits>", tmpl.ID))
		}
		if ids[tmpl.ID] {
			errs = append(errs, fmt.Errorf("component %q: duplicate id", tmpl.ID))
			continue
		}
		ids[tmpl.ID] = true

		if tmpl.Name == "" {
			errs = append(errs, fmt.Errorf("component %q: name is required", tmpl.ID))
		}
		if !validTypes[tmpl.Type] {
			errs = append(errs, fmt.Errorf("component %q: invalid type %q (must be component/container/layout)", tmpl.ID, tmpl.Type))
		}
		if tmpl.Category != "" && !categoryNames[tmpl.Category] {
			errs = append(errs, fmt.Errorf("component %q: references unknown category %q", tmpl.ID, tmpl.Category))
		}
	}

	for _, cat := range c.Categories {
		for _, id := range cat.Components {
			if !ids[id] {
				errs = append(errs, fmt.Errorf("category %q: references non-existent component %q", cat.Name, id))
			}
		}
	}

	return errs
}

// BuildIndex creates lookup maps. Call it after Validate passes.
func (c *Catalog) BuildIndex() *CatalogIndex {
	idx := &CatalogIndex{
		TemplateByID:        make(map[string]*Template, len(c.Components)),
		CategoryByName:      make(map[string]*Category, len(c.Categories)),
		TemplatesByCategory: make(map[string][]*Template),
	}
	for i := range c.Categories {
		idx.CategoryByName[c.Categories[i].Name] = &c.Categories[i]
	}
	for i := range c.Components {
		tmpl := &c.Components[i]
		idx.TemplateByID[tmpl.ID] = tmpl
		idx.TemplatesByCategory[tmpl.Category] = append(idx.TemplatesByCategory[tmpl.Category], tmpl)
	}
	return idx
}

// LoadFromFile loads, validates and indexes a catalog file.
func LoadFromFile(path string) (*Catalog, *CatalogIndex, error) {
	data, err := util.ReadMapped(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses, validates and indexes catalog JSON.
func LoadFromBytes(data []byte) (*Catalog, *CatalogIndex, error) {
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	if errs := catalog.Validate(); len(errs) > 0 {
		return nil, nil, fmt.Errorf("catalog validation failed: %w", errors.Join(errs...))
	}
	return &catalog, catalog.BuildIndex(), nil
}

// LoadDefault loads the embedded Qatar GBA catalog.
func LoadDefault() (*Catalog, *CatalogIndex, error) {
	return LoadFromBytes(catalogs.ComponentsJSON)
}
