package theme

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Scale is an ordered name→value map such as a spacing or font-size scale.
// Keys keep the order they were declared in, which drives output order.
// A nil *Scale behaves as empty.
type Scale struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewScale builds a scale from alternating key, value arguments.
func NewScale(kv ...string) *Scale {
	s := &Scale{m: orderedmap.New[string, string]()}
	for i := 0; i+1 < len(kv); i += 2 {
		s.m.Set(kv[i], kv[i+1])
	}
	return s
}

// Set adds or replaces key. Replacing keeps the original position.
func (s *Scale) Set(key, value string) {
	if s.m == nil {
		s.m = orderedmap.New[string, string]()
	}
	s.m.Set(key, value)
}

// Get returns the value for key.
func (s *Scale) Get(key string) (string, bool) {
	if s == nil || s.m == nil {
		return "", false
	}
	return s.m.Get(key)
}

// Len returns the number of entries.
func (s *Scale) Len() int {
	if s == nil || s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Keys returns keys in declaration order.
func (s *Scale) Keys() []string {
	keys := make([]string, 0, s.Len())
	s.Each(func(k, _ string) { keys = append(keys, k) })
	return keys
}

// Each calls fn for every entry in declaration order.
func (s *Scale) Each(fn func(key, value string)) {
	if s == nil || s.m == nil {
		return
	}
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// MarshalJSON encodes the scale as a JSON object in declaration order.
func (s *Scale) MarshalJSON() ([]byte, error) {
	if s == nil || s.m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.m)
}

// UnmarshalJSON accepts any JSON object with scalar values. Numbers and
// booleans are kept in their literal text form.
func (s *Scale) UnmarshalJSON(data []byte) error {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	return s.UnmarshalYAML(&node)
}

// MarshalYAML encodes the scale as a mapping in declaration order.
func (s *Scale) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	s.Each(func(k, v string) {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v},
		)
	})
	return node, nil
}

// UnmarshalYAML reads a mapping of scalars.
func (s *Scale) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	s.m = orderedmap.New[string, string]()
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: value of %q must be a scalar", value.Line, key.Value)
		}
		s.m.Set(key.Value, value.Value)
	}
	return nil
}
