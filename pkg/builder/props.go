package builder

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Props is an ordered property bag. Values are whatever JSON can carry:
// strings, booleans, numbers, slices and maps. A nil *Props reads as empty.
type Props struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewProps builds props from alternating key, value arguments. Non-string
// keys are skipped.
func NewProps(kv ...any) *Props {
	p := &Props{m: orderedmap.New[string, any]()}
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			p.m.Set(k, kv[i+1])
		}
	}
	return p
}

// Get returns the value for key.
func (p *Props) Get(key string) (any, bool) {
	if p == nil || p.m == nil {
		return nil, false
	}
	return p.m.Get(key)
}

// String returns the value for key if it is a string.
func (p *Props) String(key string) string {
	v, _ := p.Get(key)
	s, _ := v.(string)
	return s
}

// Set adds or replaces key.
func (p *Props) Set(key string, value any) {
	if p.m == nil {
		p.m = orderedmap.New[string, any]()
	}
	p.m.Set(key, value)
}

// Len returns the number of entries.
func (p *Props) Len() int {
	if p == nil || p.m == nil {
		return 0
	}
	return p.m.Len()
}

// Each calls fn for every entry in insertion order.
func (p *Props) Each(fn func(key string, value any)) {
	if p == nil || p.m == nil {
		return
	}
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Clone returns a shallow copy; values are shared.
func (p *Props) Clone() *Props {
	if p == nil {
		return nil
	}
	out := NewProps()
	p.Each(func(k string, v any) { out.m.Set(k, v) })
	return out
}

// Merge copies every entry of other into p, overwriting existing keys.
func (p *Props) Merge(other *Props) {
	other.Each(func(k string, v any) { p.Set(k, v) })
}

// MarshalJSON encodes the props as an object in insertion order.
func (p *Props) MarshalJSON() ([]byte, error) {
	if p == nil || p.m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.m)
}

// UnmarshalJSON decodes a JSON object, keeping key order.
func (p *Props) UnmarshalJSON(data []byte) error {
	m := orderedmap.New[string, any]()
	if err := json.Unmarshal(data, m); err != nil {
		return err
	}
	p.m = m
	return nil
}
