package catalog

import (
	"strings"

	"github.com/gnana997/lucidex/pkg/builder"
)

// SearchResult holds a template match with the reason it matched.
type SearchResult struct {
	Template    *Template `json:"template"`
	MatchReason string    `json:"match_reason"`
}

// QueryService provides read-only queries over a loaded catalog.
type QueryService struct {
	Catalog *Catalog
	Index   *CatalogIndex
}

// NewQueryService creates a QueryService from a validated catalog and its index.
func NewQueryService(cat *Catalog, idx *CatalogIndex) *QueryService {
	return &QueryService{Catalog: cat, Index: idx}
}

// LoadAndQuery loads a catalog file and returns a QueryService over it.
func LoadAndQuery(path string) (*QueryService, error) {
	cat, idx, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	return NewQueryService(cat, idx), nil
}

// LoadAndQueryBytes loads catalog JSON and returns a QueryService over it.
func LoadAndQueryBytes(data []byte) (*QueryService, error) {
	cat, idx, err := LoadFromBytes(data)
	if err != nil {
		return nil, err
	}
	return NewQueryService(cat, idx), nil
}

// LoadDefaultQuery returns a QueryService over the embedded catalog.
func LoadDefaultQuery() (*QueryService, error) {
	cat, idx, err := LoadDefault()
	if err != nil {
		return nil, err
	}
	return NewQueryService(cat, idx), nil
}

// ListCategories returns all categories in declaration order.
func (q *QueryService) ListCategories() []Category {
	return q.Catalog.Categories
}

// ListComponents returns templates filtered by category and keyword; either
// may be "" to skip it. The keyword matches name, description and tags,
// case-insensitively.
func (q *QueryService) ListComponents(category, keyword string) []Template {
	var candidates []*Template
	if category != "" {
		candidates = q.Index.TemplatesByCategory[category]
	} else {
		candidates = make([]*Template, 0, len(q.Catalog.Components))
		for i := range q.Catalog.Components {
			candidates = append(candidates, &q.Catalog.Components[i])
		}
	}

	keyword = strings.ToLower(keyword)
	result := make([]Template, 0)
	for _, tmpl := range candidates {
		if keyword != "" && matchReason(tmpl, keyword) == "" {
			continue
		}
		result = append(result, *tmpl)
	}
	return result
}

// GetComponent looks a template up by id, then by case-insensitive name.
func (q *QueryService) GetComponent(id string) (*Template, bool) {
	if tmpl, ok := q.Index.TemplateByID[id]; ok {
		return tmpl, true
	}
	for i := range q.Catalog.Components {
		if strings.EqualFold(q.Catalog.Components[i].Name, id) {
			return &q.Catalog.Components[i], true
		}
	}
	return nil, false
}

// SearchComponents matches query against ids, names, descriptions, tags and
// prop names, reporting the first field that matched.
func (q *QueryService) SearchComponents(query string) []SearchResult {
	query = strings.ToLower(query)
	if query == "" {
		return nil
	}
	var results []SearchResult
	for i := range q.Catalog.Components {
		tmpl := &q.Catalog.Components[i]
		if reason := matchReason(tmpl, query); reason != "" {
			results = append(results, SearchResult{Template: tmpl, MatchReason: reason})
		}
	}
	return results
}

func matchReason(tmpl *Template, query string) string {
	switch {
	case strings.Contains(strings.ToLower(tmpl.ID), query):
		return "id"
	case strings.Contains(strings.ToLower(tmpl.Name), query):
		return "name"
	case strings.Contains(strings.ToLower(tmpl.Description), query):
		return "description"
	}
	for _, tag := range tmpl.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return "tag:" + tag
		}
	}
	reason := ""
	tmpl.Props.Each(func(k string, _ any) {
		if reason == "" && strings.Contains(strings.ToLower(k), query) {
			reason = "prop:" + k
		}
	})
	return reason
}

// ToDroppable returns the builder template for id with its own copy of the
// default props.
func (q *QueryService) ToDroppable(id string) (*builder.DroppableComponent, bool) {
	tmpl, ok := q.GetComponent(id)
	if !ok {
		return nil, false
	}
	return tmpl.Droppable(), true
}

// Droppable converts the template into a builder node.
func (t *Template) Droppable() *builder.DroppableComponent {
	props := t.Props.Clone()
	if props == nil {
		props = builder.NewProps()
	}
	return &builder.DroppableComponent{
		ID:       t.ID,
		Type:     t.Type,
		Name:     t.Name,
		Category: t.Category,
		Props:    props,
	}
}
