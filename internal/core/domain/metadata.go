package domain

import (
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

// Value kinds. The zero Kind is KindNull.
const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindMapping
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is an untyped front-matter value.
// Exactly one payload field is meaningful, selected by Kind.
type Value struct {
	Kind    Kind
	Str     string
	Num     float64
	Bool    bool
	Items   []Value
	Mapping Metadata
}

// Null returns the null value.
func Null() Value { return Value{Kind: KindNull} }

// String returns a string value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Array returns an array value.
func Array(items ...Value) Value { return Value{Kind: KindArray, Items: items} }

// Mapping returns a mapping value.
func Mapping(m Metadata) Value { return Value{Kind: KindMapping, Mapping: m} }

// AsString returns the payload when v is a string.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

// Text renders scalar values as display text.
// Arrays, mappings and null report false.
func (v Value) Text() (string, bool) {
	switch v.Kind {
	case KindString:
		return v.Str, true
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64), true
	case KindBool:
		return strconv.FormatBool(v.Bool), true
	default:
		return "", false
	}
}

// StringSlice returns the items when v is an array made only of strings.
// Mixed arrays are rejected as a whole.
func (v Value) StringSlice() ([]string, bool) {
	if v.Kind != KindArray {
		return nil, false
	}
	out := make([]string, 0, len(v.Items))
	for _, item := range v.Items {
		s, ok := item.AsString()
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// Entry is a single key/value pair of a Metadata mapping.
type Entry struct {
	Key   string
	Value Value
}

// Metadata is a front-matter mapping in declaration order.
type Metadata []Entry

// Lookup finds the first entry whose key equals key ignoring case.
func (m Metadata) Lookup(key string) (Value, bool) {
	for _, e := range m {
		if strings.EqualFold(e.Key, key) {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the keys in declaration order.
func (m Metadata) Keys() []string {
	keys := make([]string, len(m))
	for i, e := range m {
		keys[i] = e.Key
	}
	return keys
}
