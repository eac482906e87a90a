// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package param

import "encoding/json"

// Kind tags the decoded shape of a raw argument
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Object
	Array
)

// Value is one parsed argument. A raw argument which is a well-formed
// JSON literal decodes to the matching kind; anything else falls back
// to a String value holding the original text.
type Value struct {
	kind    Kind
	raw     string
	decoded interface{}
}

// Parse decodes one raw argument. It never fails; a bare string is the
// expected common case, not an error.
func Parse(raw string) Value {
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return Value{kind: String, raw: raw, decoded: raw}
	}
	return Value{kind: kindOf(v), raw: raw, decoded: v}
}

// ParseAll decodes each raw argument independently,
// preserving count and order
func ParseAll(raws []string) []Value {
	vals := make([]Value, len(raws))
	for i, raw := range raws {
		vals[i] = Parse(raw)
	}
	return vals
}

func kindOf(v interface{}) Kind {
	switch v.(type) {
	case nil:
		return Null
	case bool:
		return Bool
	case float64:
		return Number
	case string:
		return String
	case map[string]interface{}:
		return Object
	case []interface{}:
		return Array
	default:
		return String
	}
}

func (v Value) Kind() Kind { return v.kind }

// Raw returns the original argument text
func (v Value) Raw() string { return v.raw }

// Interface returns the decoded value
func (v Value) Interface() interface{} { return v.decoded }

func (v Value) Bool() bool {
	b, _ := v.decoded.(bool)
	return b
}

func (v Value) Number() float64 {
	n, _ := v.decoded.(float64)
	return n
}

func (v Value) String() string {
	if s, ok := v.decoded.(string); ok {
		return s
	}
	return v.raw
}

func (v Value) Object() map[string]interface{} {
	m, _ := v.decoded.(map[string]interface{})
	return m
}

func (v Value) Array() []interface{} {
	a, _ := v.decoded.([]interface{})
	return a
}

// Decode unmarshals the argument into out, using the original text.
// Useful for typed operation inputs.
func (v Value) Decode(out interface{}) error {
	return json.Unmarshal([]byte(v.raw), out)
}
