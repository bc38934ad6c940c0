package convert

import (
	"fmt"
	"strconv"

	"github.com/mcncl/armago/internal/errors"
)

// Scalar enumerates the Go types that can be parsed from a raw runtime
// argument string. Inbound conversion is deliberately scalar-only: the
// runtime's binding layer delivers array and object arguments in
// structured form, so no literal parser lives here.
type Scalar interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | bool | string
}

// Unmarshaler is implemented by types that parse themselves from a raw
// runtime string.
type Unmarshaler interface {
	UnmarshalArma(s string) error
}

// Parse parses a scalar argument string delivered by the runtime into
// the requested Go type. A failure is reported as a descriptive parsing
// error carrying the underlying strconv message; Parse never panics.
func Parse[T Scalar](s string) (T, error) {
	var out T
	if err := ParseInto(s, &out); err != nil {
		return out, err
	}
	return out, nil
}

// ParseInto parses a scalar argument string into dst, which must be a
// pointer to a supported scalar type or implement Unmarshaler. It is the
// dynamic-target form of Parse, used when the target type is only known
// at runtime.
func ParseInto(s string, dst any) error {
	if u, ok := dst.(Unmarshaler); ok {
		return u.UnmarshalArma(s)
	}

	switch p := dst.(type) {
	case *string:
		*p = s
		return nil
	case *bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return parseError(s, "bool", err)
		}
		*p = b
		return nil
	case *float32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return parseError(s, "float32", err)
		}
		*p = float32(f)
		return nil
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return parseError(s, "float64", err)
		}
		*p = f
		return nil
	case *int:
		n, err := strconv.ParseInt(s, 10, 0)
		if err != nil {
			return parseError(s, "int", err)
		}
		*p = int(n)
		return nil
	case *int8:
		n, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return parseError(s, "int8", err)
		}
		*p = int8(n)
		return nil
	case *int16:
		n, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return parseError(s, "int16", err)
		}
		*p = int16(n)
		return nil
	case *int32:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return parseError(s, "int32", err)
		}
		*p = int32(n)
		return nil
	case *int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return parseError(s, "int64", err)
		}
		*p = n
		return nil
	case *uint:
		n, err := strconv.ParseUint(s, 10, 0)
		if err != nil {
			return parseError(s, "uint", err)
		}
		*p = uint(n)
		return nil
	case *uint8:
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return parseError(s, "uint8", err)
		}
		*p = uint8(n)
		return nil
	case *uint16:
		n, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return parseError(s, "uint16", err)
		}
		*p = uint16(n)
		return nil
	case *uint32:
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return parseError(s, "uint32", err)
		}
		*p = uint32(n)
		return nil
	case *uint64:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return parseError(s, "uint64", err)
		}
		*p = n
		return nil
	}

	return errors.NewParsingError(
		fmt.Sprintf("unsupported parse target %T", dst),
		errors.ErrUnsupportedType,
	)
}

func parseError(s, target string, err error) error {
	return errors.NewParsingError(fmt.Sprintf("cannot parse %q as %s", s, target), err)
}
