package tokens

import (
	"encoding/json"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// TokenType is the closed set of token kinds.
type TokenType string

const (
	TypeColor        TokenType = "color"
	TypeSpacing      TokenType = "spacing"
	TypeTypography   TokenType = "typography"
	TypeShadow       TokenType = "shadow"
	TypeBorderRadius TokenType = "border-radius"
)

// Theme selects the light or dark side of a themed token value.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps "dark" (any case) to ThemeDark and everything else to ThemeLight.
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

// DesignToken is a single named design-system value.
type DesignToken struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Value       TokenValue `json:"value"`
	Variable    string     `json:"variable"`
	Category    string     `json:"category"`
	Type        TokenType  `json:"type"`
}

// TokenCategory groups the flattened tokens of one source document.
// Tokens iterate in source declaration order.
type TokenCategory struct {
	Name        string                                         `json:"name"`
	Description string                                         `json:"description"`
	Tokens      *orderedmap.OrderedMap[string, *DesignToken] `json:"tokens"`
}

// NewTokenCategory returns an empty category.
func NewTokenCategory(name, description string) *TokenCategory {
	return &TokenCategory{
		Name:        name,
		Description: description,
		Tokens:      orderedmap.New[string, *DesignToken](),
	}
}

// TokenCollection maps category keys (colors, spacing, ...) to categories.
// A collection is shared between callers once built and must be treated as read-only.
type TokenCollection struct {
	categories *orderedmap.OrderedMap[string, *TokenCategory]
}

// NewTokenCollection returns an empty collection.
func NewTokenCollection() *TokenCollection {
	return &TokenCollection{categories: orderedmap.New[string, *TokenCategory]()}
}

// Set adds or replaces a category.
func (c *TokenCollection) Set(key string, cat *TokenCategory) {
	c.categories.Set(key, cat)
}

// Get returns the category stored under key.
func (c *TokenCollection) Get(key string) (*TokenCategory, bool) {
	return c.categories.Get(key)
}

// Keys returns the category keys in insertion order.
func (c *TokenCollection) Keys() []string {
	keys := make([]string, 0, c.categories.Len())
	for pair := c.categories.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of categories.
func (c *TokenCollection) Len() int {
	return c.categories.Len()
}

// MarshalJSON encodes the collection as an ordered JSON object.
func (c *TokenCollection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.categories)
}

// IndexEntry is one flattened token in a TokenIndex.
type IndexEntry struct {
	Token    *DesignToken `json:"token"`
	Category string       `json:"category"`
	Path     string       `json:"path"`
}

// TokenIndex maps "<category>:<tokenKey>" ids to entries, in collection order.
type TokenIndex struct {
	entries *orderedmap.OrderedMap[string, IndexEntry]
}

// NewTokenIndex returns an empty index.
func NewTokenIndex() *TokenIndex {
	return &TokenIndex{entries: orderedmap.New[string, IndexEntry]()}
}

// Set adds or replaces an entry.
func (x *TokenIndex) Set(id string, entry IndexEntry) {
	x.entries.Set(id, entry)
}

// Get returns the entry for a token id.
func (x *TokenIndex) Get(id string) (IndexEntry, bool) {
	return x.entries.Get(id)
}

// Len returns the number of entries.
func (x *TokenIndex) Len() int {
	return x.entries.Len()
}

// IDs returns the token ids in index order.
func (x *TokenIndex) IDs() []string {
	ids := make([]string, 0, x.entries.Len())
	for pair := x.entries.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key)
	}
	return ids
}

// Each calls fn for every entry in index order until fn returns false.
func (x *TokenIndex) Each(fn func(id string, entry IndexEntry) bool) {
	for pair := x.entries.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// MarshalJSON encodes the index as an ordered JSON object.
func (x *TokenIndex) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.entries)
}

// CategoryInfo summarizes one category of a collection.
type CategoryInfo struct {
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        TokenType `json:"type"`
	TokenCount  int       `json:"token_count"`
}

// Filters narrows SearchTokens results. Empty fields do not filter.
type Filters struct {
	Category string
	Type     TokenType
}
