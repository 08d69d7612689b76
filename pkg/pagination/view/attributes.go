package view

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Value is an attribute value: Tokens, Text or Flag.
type Value interface {
	isValue()
}

// Tokens is a whitespace-separated token list such as CSS class names.
// Merging two token lists yields their union.
type Tokens []string

// Text is a plain string value. When merged, the overlay wins.
type Text string

// Flag is a boolean attribute. True renders the bare attribute name,
// false omits the attribute.
type Flag bool

func (Tokens) isValue() {}
func (Text) isValue()   {}
func (Flag) isValue()   {}

// Attributes maps attribute names to values.
type Attributes map[string]Value

// Class is shorthand for an attribute set with only a class list.
func Class(classes ...string) Attributes {
	return Attributes{"class": Tokens(classes)}
}

// Clone returns a copy that shares no token slices with a.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		if tokens, ok := v.(Tokens); ok {
			v = slices.Clone(tokens)
		}
		out[k] = v
	}
	return out
}

// Keys returns the attribute names in sorted order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether the token list under key contains token.
func (a Attributes) Has(key, token string) bool {
	return slices.Contains(tokensOf(a[key]), token)
}

// Merge combines attribute sets left to right. Neither input is modified.
//
// For a key present on both sides, if either value is a token list the
// result is the union of both sides' tokens, base first. Otherwise the
// later value wins.
func Merge(sets ...Attributes) Attributes {
	out := Attributes{}
	for _, set := range sets {
		for k, overlay := range set {
			base, exists := out[k]
			if !exists {
				out[k] = cloneValue(overlay)
				continue
			}
			out[k] = mergeValue(base, overlay)
		}
	}
	return out
}

func mergeValue(base, overlay Value) Value {
	_, baseTokens := base.(Tokens)
	_, overlayTokens := overlay.(Tokens)
	if !baseTokens && !overlayTokens {
		return overlay
	}

	merged := slices.Clone(tokensOf(base))
	for _, tok := range tokensOf(overlay) {
		if !slices.Contains(merged, tok) {
			merged = append(merged, tok)
		}
	}
	return Tokens(merged)
}

func cloneValue(v Value) Value {
	if tokens, ok := v.(Tokens); ok {
		return slices.Clone(tokens)
	}
	return v
}

// tokensOf views any value as a token list. A Flag contributes nothing.
func tokensOf(v Value) []string {
	switch val := v.(type) {
	case Tokens:
		return val
	case Text:
		return strings.Fields(string(val))
	default:
		return nil
	}
}

// ParseAttributes converts a decoded YAML or JSON mapping into Attributes.
// Sequences become Tokens, booleans become Flags and everything else
// becomes Text, except "class", which is always a token list.
func ParseAttributes(raw map[string]any) (Attributes, error) {
	if raw == nil {
		return nil, nil
	}
	out := make(Attributes, len(raw))
	for k, v := range raw {
		value, err := parseValue(k, v)
		if err != nil {
			return nil, err
		}
		out[k] = value
	}
	return out, nil
}

func parseValue(key string, v any) (Value, error) {
	switch val := v.(type) {
	case bool:
		return Flag(val), nil
	case string:
		if key == "class" {
			return Tokens(strings.Fields(val)), nil
		}
		return Text(val), nil
	case []string:
		return Tokens(slices.Clone(val)), nil
	case []any:
		tokens := make(Tokens, 0, len(val))
		for _, item := range val {
			tokens = append(tokens, fmt.Sprint(item))
		}
		return tokens, nil
	case int, int64, float64:
		return Text(fmt.Sprint(val)), nil
	case nil:
		return Flag(false), nil
	default:
		return nil, fmt.Errorf("attribute %q: unsupported value type %T", key, v)
	}
}
