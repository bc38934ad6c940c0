// Package value implements the Arma (SQF) value model: a closed tagged
// union covering every shape the scripting runtime can express, together
// with its literal text formatting.
package value

import (
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNil Kind = iota
	KindNumber
	KindBoolean
	KindString
	KindArray
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a single Arma value. The zero Value is Nil. Values are
// immutable once built; conversions copy child slices rather than alias
// them, so a Value may be shared freely across goroutines.
type Value struct {
	kind Kind
	num  float64
	b    bool
	str  string
	arr  []Value
}

// Nil returns the absence-of-a-value literal.
func Nil() Value {
	return Value{kind: KindNil}
}

// Number returns a numeric Value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Boolean returns a true/false Value.
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// Str returns a string Value. The payload is stored raw; quoting and
// escaping happen only when the value is formatted.
func Str(s string) Value {
	return Value{kind: KindString, str: s}
}

// Array returns an array Value holding the given elements in order.
// Elements may themselves be arrays; the structure is a tree.
func Array(elements ...Value) Value {
	arr := make([]Value, len(elements))
	copy(arr, elements)
	return Value{kind: KindArray, arr: arr}
}

// Kind reports which variant this Value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNil reports whether the value is the Nil variant.
func (v Value) IsNil() bool {
	return v.kind == KindNil
}

// IsNumber reports whether AsFloat64 would succeed.
func (v Value) IsNumber() bool {
	return v.kind == KindNumber
}

// IsBoolean reports whether AsBool would succeed.
func (v Value) IsBoolean() bool {
	return v.kind == KindBoolean
}

// IsString reports whether AsString would succeed.
func (v Value) IsString() bool {
	return v.kind == KindString
}

// IsArray reports whether AsSlice would succeed.
func (v Value) IsArray() bool {
	return v.kind == KindArray
}

// AsFloat64 returns the numeric payload. The second result is false for
// any variant other than Number.
func (v Value) AsFloat64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// AsBool returns the boolean payload. The second result is false for any
// variant other than Boolean.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBoolean {
		return false, false
	}
	return v.b, true
}

// AsString returns the raw (unescaped) string payload. The second result
// is false for any variant other than String.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsSlice returns a copy of the array elements. The second result is
// false for any variant other than Array.
func (v Value) AsSlice() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	out := make([]Value, len(v.arr))
	copy(out, v.arr)
	return out, true
}

// Len returns the element count for Array values and 0 otherwise.
func (v Value) Len() int {
	return len(v.arr)
}

// IsEmpty reports the domain-specific emptiness rule: Nil is always
// empty, a Number is empty only when it equals 0.0 exactly, a Boolean is
// empty when false, a String when zero-length and an Array when it has no
// elements. Note the Number and Boolean rules differ from a generic
// container check; they are part of the runtime contract.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindNil:
		return true
	case KindNumber:
		return v.num == 0.0
	case KindBoolean:
		return !v.b
	case KindString:
		return v.str == ""
	case KindArray:
		return len(v.arr) == 0
	default:
		return false
	}
}

// Equal reports structural equality. Number comparison follows IEEE
// semantics, so a NaN value does not equal itself.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindNumber:
		return v.num == other.num
	case KindBoolean:
		return v.b == other.b
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Less reports structural ordering: variants rank Nil < Number < Boolean
// < String < Array, and equal variants compare by payload (arrays
// lexicographically). Comparisons involving NaN are false both ways.
func (v Value) Less(other Value) bool {
	if v.kind != other.kind {
		return v.kind < other.kind
	}
	switch v.kind {
	case KindNil:
		return false
	case KindNumber:
		return v.num < other.num
	case KindBoolean:
		return !v.b && other.b
	case KindString:
		return v.str < other.str
	case KindArray:
		for i := 0; i < len(v.arr) && i < len(other.arr); i++ {
			if v.arr[i].Less(other.arr[i]) {
				return true
			}
			if other.arr[i].Less(v.arr[i]) {
				return false
			}
		}
		return len(v.arr) < len(other.arr)
	default:
		return false
	}
}

// String formats the value as an SQF literal. This is the wire contract
// with the runtime's own parser and must stay byte-for-byte stable:
// null, shortest-decimal numbers, true/false, double-quoted strings with
// internal quotes doubled, and comma-joined bracketed arrays.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.kind {
	case KindNil:
		sb.WriteString("null")
	case KindNumber:
		sb.WriteString(strconv.FormatFloat(v.num, 'f', -1, 64))
	case KindBoolean:
		if v.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindString:
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(v.str, `"`, `""`))
		sb.WriteByte('"')
	case KindArray:
		sb.WriteByte('[')
		for i, el := range v.arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			el.write(sb)
		}
		sb.WriteByte(']')
	}
}
