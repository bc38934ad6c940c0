// Package convert implements the two conversion protocols built on the
// Arma value model: outbound conversion from Go values to value.Value
// trees, and inbound parsing of runtime-supplied scalar strings into Go
// types. The two directions are independent and are not inverses: the
// runtime's FFI layer hands scalar arguments over as raw text, while
// answers travel back as formatted Value trees.
package convert

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/iancoleman/strcase"

	"github.com/mcncl/armago/internal/errors"
	"github.com/mcncl/armago/internal/value"
)

// IntoArma is implemented by types that know how to render themselves as
// an Arma value.
type IntoArma interface {
	IntoArma() value.Value
}

// Option configures a Converter.
type Option func(*Converter)

// WithKeyNaming sets the function applied to map keys and struct field
// names when building [key, value] pairs. The default is snake_case.
func WithKeyNaming(f func(string) string) Option {
	return func(c *Converter) {
		c.keyName = f
	}
}

// WithSortKeys controls whether map-derived pairs are emitted in sorted
// key order. Sorting is on by default so output is deterministic.
func WithSortKeys(sorted bool) Option {
	return func(c *Converter) {
		c.sortKeys = sorted
	}
}

// Converter turns Go values into Arma values. Signed and unsigned
// integers widen to float64; 64-bit integers are accepted but lose
// precision above 2^53, which callers sending large identifiers should
// route through strings instead.
type Converter struct {
	keyName  func(string) string
	sortKeys bool
}

// NewConverter creates a Converter with default options
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		keyName:  strcase.ToSnake,
		sortKeys: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConverter = NewConverter()

// ToValue converts v into an Arma value using the default converter.
func ToValue(v any) (value.Value, error) {
	return defaultConverter.ToValue(v)
}

// ToValue converts a Go value into an Arma value. The mapping is:
// nil and nil pointers become Nil, booleans become Boolean, strings
// become String, numeric types widen to Number, slices and arrays become
// Array element by element, and maps with string keys and structs become
// arrays of [name, value] pairs. Types implementing IntoArma convert
// through their own method. Anything else is a convert error.
func (c *Converter) ToValue(v any) (value.Value, error) {
	switch t := v.(type) {
	case nil:
		return value.Nil(), nil
	case value.Value:
		return t, nil
	case []value.Value:
		// Already-converted elements are wrapped directly.
		return value.Array(t...), nil
	case IntoArma:
		return t.IntoArma(), nil
	case bool:
		return value.Boolean(t), nil
	case string:
		return value.Str(t), nil
	case float32:
		return value.Number(float64(t)), nil
	case float64:
		return value.Number(t), nil
	case int8:
		return value.Number(float64(t)), nil
	case int16:
		return value.Number(float64(t)), nil
	case int32:
		return value.Number(float64(t)), nil
	case int64:
		return value.Number(float64(t)), nil
	case int:
		return value.Number(float64(t)), nil
	case uint8:
		return value.Number(float64(t)), nil
	case uint16:
		return value.Number(float64(t)), nil
	case uint32:
		return value.Number(float64(t)), nil
	case uint64:
		return value.Number(float64(t)), nil
	case uint:
		return value.Number(float64(t)), nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return value.Nil(), errors.NewConvertError(fmt.Sprintf("invalid number %q", t.String()), err)
		}
		return value.Number(n), nil
	}
	return c.toValueReflect(reflect.ValueOf(v))
}

// toValueReflect handles containers, pointers and named types that the
// concrete type switch cannot reach.
func (c *Converter) toValueReflect(rv reflect.Value) (value.Value, error) {
	switch rv.Kind() {
	case reflect.Pointer:
		// A nil pointer is the Go spelling of an absent optional value.
		if rv.IsNil() {
			return value.Nil(), nil
		}
		return c.ToValue(rv.Elem().Interface())

	case reflect.Bool:
		return value.Boolean(rv.Bool()), nil

	case reflect.String:
		return value.Str(rv.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Number(float64(rv.Int())), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return value.Number(float64(rv.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return value.Number(rv.Float()), nil

	case reflect.Slice, reflect.Array:
		elements := make([]value.Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			el, err := c.ToValue(rv.Index(i).Interface())
			if err != nil {
				return value.Nil(), err
			}
			elements[i] = el
		}
		return value.Array(elements...), nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return value.Nil(), errors.NewConvertError(
				fmt.Sprintf("cannot convert map with %s keys, only string keys are supported", rv.Type().Key()),
				errors.ErrUnsupportedType,
			)
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		if c.sortKeys {
			sort.Strings(keys)
		}
		pairs := make([]value.Value, 0, len(keys))
		for _, k := range keys {
			el, err := c.ToValue(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return value.Nil(), err
			}
			pairs = append(pairs, value.Array(value.Str(c.keyName(k)), el))
		}
		return value.Array(pairs...), nil

	case reflect.Struct:
		rt := rv.Type()
		pairs := make([]value.Value, 0, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			field := rt.Field(i)
			if !field.IsExported() {
				continue
			}
			name := field.Tag.Get("arma")
			if name == "-" {
				continue
			}
			if name == "" {
				name = c.keyName(field.Name)
			}
			el, err := c.ToValue(rv.Field(i).Interface())
			if err != nil {
				return value.Nil(), err
			}
			pairs = append(pairs, value.Array(value.Str(name), el))
		}
		return value.Array(pairs...), nil
	}

	return value.Nil(), errors.NewConvertError(
		fmt.Sprintf("cannot convert Go type %s", rv.Type()),
		errors.ErrUnsupportedType,
	)
}
