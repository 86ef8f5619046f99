// Package value parses stringly-typed storage values into a tagged union.
//
// Attribute stores, cookies, and query strings only carry strings; Parse
// recovers the intended type with a fixed precedence that callers can rely
// on: boolean literals, then the null literal, then numbers, then JSON,
// then the raw string as a fallback.
package value

import (
	"encoding/json"
	"strconv"
)

// Kind tags the parsed value's type.
type Kind uint8

const (
	KindString Kind = iota
	KindBool
	KindNull
	KindNumber
	KindJSON
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindNull:
		return "Null"
	case KindNumber:
		return "Number"
	case KindJSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// Value is the tagged result of parsing one stored string.
type Value struct {
	kind Kind
	raw  string
	b    bool
	n    float64
	j    any
}

// Parse interprets raw with the documented precedence:
// "true"/"false" → Bool, "null" → Null, numeric → Number, valid JSON
// objects/arrays/strings → JSON, anything else → String.
func Parse(raw string) Value {
	switch raw {
	case "true":
		return Value{kind: KindBool, raw: raw, b: true}
	case "false":
		return Value{kind: KindBool, raw: raw}
	case "null":
		return Value{kind: KindNull, raw: raw}
	}

	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Value{kind: KindNumber, raw: raw, n: n}
	}

	if len(raw) > 0 {
		switch raw[0] {
		case '{', '[', '"':
			var out any
			if err := json.Unmarshal([]byte(raw), &out); err == nil {
				return Value{kind: KindJSON, raw: raw, j: out}
			}
		}
	}

	return Value{kind: KindString, raw: raw}
}

// Kind returns the tag.
func (v Value) Kind() Kind { return v.kind }

// Raw returns the original string.
func (v Value) Raw() string { return v.raw }

// String returns the original string; Value implements fmt.Stringer.
func (v Value) String() string { return v.raw }

// IsNull reports whether the value is the null literal.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean value and whether the kind matches.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Number returns the numeric value and whether the kind matches.
func (v Value) Number() (float64, bool) {
	return v.n, v.kind == KindNumber
}

// JSON returns the decoded JSON value and whether the kind matches.
func (v Value) JSON() (any, bool) {
	return v.j, v.kind == KindJSON
}

// Interface returns the parsed value as the closest Go type: bool, nil,
// float64, the decoded JSON value, or the raw string.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNull:
		return nil
	case KindNumber:
		return v.n
	case KindJSON:
		return v.j
	default:
		return v.raw
	}
}

// Format is the inverse of Parse: it produces the string form a value of
// the given Go type should be stored as. Structured values are JSON
// encoded; values that cannot be encoded store as the empty string.
func Format(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
		return ""
	}
}
