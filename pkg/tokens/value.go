package tokens

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ValueKind tags the shape of a TokenValue.
type ValueKind int

const (
	// ValueNone is a missing value.
	ValueNone ValueKind = iota
	// ValueLiteral is a plain string.
	ValueLiteral
	// ValueThemed is a {light, dark} pair; either side may be absent.
	ValueThemed
	// ValueWrapped is a {value} wrapper.
	ValueWrapped
	// ValueOpaque is any other object (e.g. {hex}); it has no display value.
	ValueOpaque
)

// TokenValue is the structured value of a design token.
type TokenValue struct {
	Kind     ValueKind
	Literal  string
	Light    string
	Dark     string
	HasLight bool
	HasDark  bool
	Wrapped  string
	// Opaque keeps the raw fields of a ValueOpaque object for export.
	Opaque *orderedmap.OrderedMap[string, string]
}

// Literal returns a plain string value.
func Literal(s string) TokenValue {
	return TokenValue{Kind: ValueLiteral, Literal: s}
}

// Themed returns a {light, dark} value with both sides present.
func Themed(light, dark string) TokenValue {
	return TokenValue{Kind: ValueThemed, Light: light, Dark: dark, HasLight: true, HasDark: true}
}

// Wrapped returns a {value} wrapper.
func Wrapped(s string) TokenValue {
	return TokenValue{Kind: ValueWrapped, Wrapped: s}
}

// MarshalJSON re-encodes the value in its source shape.
func (v TokenValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueLiteral:
		return json.Marshal(v.Literal)
	case ValueThemed:
		m := orderedmap.New[string, string]()
		if v.HasLight {
			m.Set("light", v.Light)
		}
		if v.HasDark {
			m.Set("dark", v.Dark)
		}
		return json.Marshal(m)
	case ValueWrapped:
		return json.Marshal(map[string]string{"value": v.Wrapped})
	case ValueOpaque:
		if v.Opaque == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.Opaque)
	default:
		return []byte("null"), nil
	}
}

// GetTokenValue resolves the display value of token for theme.
//
// Plain strings are returned as-is. A {light, dark} pair yields the requested
// side, then light, then "". A {value} wrapper yields its value. Anything
// else, including a nil token, yields "". It never fails.
func GetTokenValue(token *DesignToken, theme Theme) string {
	if token == nil {
		return ""
	}
	v := token.Value
	switch v.Kind {
	case ValueLiteral:
		return v.Literal
	case ValueThemed:
		if theme == ThemeDark && v.HasDark && v.Dark != "" {
			return v.Dark
		}
		if v.HasLight && v.Light != "" {
			return v.Light
		}
		return ""
	case ValueWrapped:
		return v.Wrapped
	default:
		return ""
	}
}
