package wikifmt

import (
	"fmt"
)

// Kind identifies which payload a [Value] carries.
type Kind int

const (
	KindText Kind = iota
	KindSigned
	KindUnsigned
	KindFloating
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindSigned:
		return "signed"
	case KindUnsigned:
		return "unsigned"
	case KindFloating:
		return "floating"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is one runtime argument of a template. The set of implementations
// is closed: [Text], [Signed], [Unsigned] and [Floating].
type Value interface {
	Renderable
	Kind() Kind
	isValue()
}

// Text is a string argument.
type Text string

// Signed is a signed integer argument.
type Signed int64

// Unsigned is an unsigned integer argument.
type Unsigned uint64

// Floating is a floating point argument. Rounding happens at render time,
// never at conversion time.
type Floating float64

func (Text) Kind() Kind     { return KindText }
func (Signed) Kind() Kind   { return KindSigned }
func (Unsigned) Kind() Kind { return KindUnsigned }
func (Floating) Kind() Kind { return KindFloating }

func (Text) isValue()     {}
func (Signed) isValue()   {}
func (Unsigned) isValue() {}
func (Floating) isValue() {}

type signedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type floatingPoint interface {
	~float32 | ~float64
}

// Int widens any signed integer into a [Signed] value.
func Int[T signedInteger](v T) Value { return Signed(v) }

// Uint widens any unsigned integer into an [Unsigned] value.
func Uint[T unsignedInteger](v T) Value { return Unsigned(v) }

// Float widens a float32 or float64 into a [Floating] value.
func Float[T floatingPoint](v T) Value { return Floating(v) }

// OptionalUint converts a non-zero integer stored as "absent means zero".
// A nil pointer becomes Unsigned(0).
func OptionalUint[T unsignedInteger](v *T) Value {
	if v == nil {
		return Unsigned(0)
	}
	return Unsigned(*v)
}

// OptionalInt is the signed counterpart of [OptionalUint].
func OptionalInt[T signedInteger](v *T) Value {
	if v == nil {
		return Signed(0)
	}
	return Signed(*v)
}

// ValueOf converts a Go value into a [Value]. Strings, fmt.Stringers, all
// integer and float widths, and pointers to integers (nil meaning zero) are
// accepted. Anything else fails with [ErrInvalidArgument].
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		return Text(x), nil
	case int:
		return Signed(x), nil
	case int8:
		return Signed(x), nil
	case int16:
		return Signed(x), nil
	case int32:
		return Signed(x), nil
	case int64:
		return Signed(x), nil
	case uint:
		return Unsigned(x), nil
	case uint8:
		return Unsigned(x), nil
	case uint16:
		return Unsigned(x), nil
	case uint32:
		return Unsigned(x), nil
	case uint64:
		return Unsigned(x), nil
	case float32:
		return Floating(x), nil
	case float64:
		return Floating(x), nil
	case *int32:
		return OptionalInt(x), nil
	case *int64:
		return OptionalInt(x), nil
	case *uint8:
		return OptionalUint(x), nil
	case *uint16:
		return OptionalUint(x), nil
	case *uint32:
		return OptionalUint(x), nil
	case *uint64:
		return OptionalUint(x), nil
	case fmt.Stringer:
		return Text(x.String()), nil
	default:
		return nil, fmt.Errorf("%w: unsupported argument type %T", ErrInvalidArgument, v)
	}
}

// Values converts each element with [ValueOf].
func Values(vs ...any) ([]Value, error) {
	out := make([]Value, len(vs))
	for i, v := range vs {
		val, err := ValueOf(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = val
	}
	return out, nil
}
