package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// CreateTokenCollection builds the collection from the embedded sources.
// The result depends only on static data, so callers may memoize it (Store does).
func CreateTokenCollection() *TokenCollection {
	return BuildCollection(DefaultSources(), nil)
}

// BuildCollection normalizes sources into a TokenCollection.
//
// Categories appear in the fixed order colors, spacing, typography, shadows,
// borderRadius; sources with an unknown key are skipped. A source that fails
// to decode produces an empty category and a warning, never an error.
func BuildCollection(sources []Source, logger *slog.Logger) *TokenCollection {
	if logger == nil {
		logger = slog.Default()
	}

	byKey := make(map[string]Source, len(sources))
	for _, src := range sources {
		if _, ok := lookupCategory(src.Key); !ok {
			logger.Warn("skipping token source with unknown category", "key", src.Key, "origin", src.Origin)
			continue
		}
		byKey[src.Key] = src
	}

	collection := NewTokenCollection()
	for _, def := range knownCategories {
		src, ok := byKey[def.Key]
		if !ok {
			continue
		}
		cat := NewTokenCategory(def.Name, def.Description)
		root, err := decodeSource(src)
		if err != nil {
			logger.Warn("failed to decode token source", "key", src.Key, "origin", src.Origin, "error", err)
		} else if root != nil {
			flatten(root, "", def.Type, cat.Tokens)
		}
		collection.Set(def.Key, cat)
	}
	return collection
}

// decodeSource parses a JSON or YAML document and returns the mapping node
// stored under the source's key. A document without that field yields nil.
func decodeSource(src Source) (*yaml.Node, error) {
	data := src.Data
	// JSON is valid YAML once insignificant whitespace (tabs included) is removed.
	if json.Valid(data) {
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err == nil {
			data = buf.Bytes()
		}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", src.Origin, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	top := doc.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: top level is not an object", src.Origin)
	}
	if node := mappingValue(top, src.Key); node != nil && node.Kind == yaml.MappingNode {
		return node, nil
	}
	return nil, nil
}

// flatten walks a group node. A mapping with a "name" field is a token leaf;
// any other mapping is a nesting level whose key is joined onto its children with "-".
func flatten(node *yaml.Node, prefix string, typ TokenType, out *orderedmap.OrderedMap[string, *DesignToken]) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		child := node.Content[i+1]
		if child.Kind != yaml.MappingNode {
			continue
		}

		fullKey := key
		if prefix != "" {
			fullKey = prefix + "-" + key
		}

		if mappingValue(child, "name") != nil {
			out.Set(fullKey, leafToken(child, typ))
			continue
		}
		flatten(child, fullKey, typ, out)
	}
}

func leafToken(node *yaml.Node, typ TokenType) *DesignToken {
	return &DesignToken{
		Name:        scalar(mappingValue(node, "name")),
		Description: scalar(mappingValue(node, "description")),
		Value:       decodeValue(mappingValue(node, "value")),
		Variable:    scalar(mappingValue(node, "variable")),
		Category:    scalar(mappingValue(node, "category")),
		Type:        typ,
	}
}

func decodeValue(node *yaml.Node) TokenValue {
	if node == nil {
		return TokenValue{Kind: ValueNone}
	}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return TokenValue{Kind: ValueNone}
		}
		return Literal(node.Value)
	case yaml.MappingNode:
		light := mappingValue(node, "light")
		dark := mappingValue(node, "dark")
		if light != nil || dark != nil {
			return TokenValue{
				Kind:     ValueThemed,
				Light:    scalar(light),
				Dark:     scalar(dark),
				HasLight: light != nil,
				HasDark:  dark != nil,
			}
		}
		if wrapped := mappingValue(node, "value"); wrapped != nil {
			return Wrapped(scalar(wrapped))
		}
		opaque := orderedmap.New[string, string]()
		for i := 0; i+1 < len(node.Content); i += 2 {
			opaque.Set(node.Content[i].Value, scalar(node.Content[i+1]))
		}
		return TokenValue{Kind: ValueOpaque, Opaque: opaque}
	default:
		return TokenValue{Kind: ValueOpaque}
	}
}

// mappingValue returns the value node for key in a mapping node, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// scalar returns the text of a scalar node; non-scalars and nil give "".
func scalar(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return ""
	}
	return node.Value
}

// GetTokenCategories summarizes every category of the collection.
func GetTokenCategories(c *TokenCollection) []CategoryInfo {
	if c == nil {
		return []CategoryInfo{}
	}
	infos := make([]CategoryInfo, 0, c.Len())
	for _, key := range c.Keys() {
		if info := GetCategoryInfo(c, key); info != nil {
			infos = append(infos, *info)
		}
	}
	return infos
}

// GetCategoryInfo returns the summary for key, or nil if the key is unknown.
func GetCategoryInfo(c *TokenCollection, key string) *CategoryInfo {
	if c == nil {
		return nil
	}
	cat, ok := c.Get(key)
	if !ok {
		return nil
	}
	typ, _ := CategoryType(key)
	return &CategoryInfo{
		Key:         key,
		Name:        cat.Name,
		Description: cat.Description,
		Type:        typ,
		TokenCount:  cat.Tokens.Len(),
	}
}

// TokenKeys returns a category's token keys in declaration order.
func TokenKeys(cat *TokenCategory) []string {
	if cat == nil {
		return nil
	}
	keys := make([]string, 0, cat.Tokens.Len())
	for pair := cat.Tokens.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
