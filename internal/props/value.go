// Package props provides stringly-typed key-value properties. A property
// value is a boolean, a number, or a string, and access is deliberately
// lenient: reading a value as the wrong type yields the zero value of the
// requested type rather than an error. The package prioritizes ergonomics
// over explicit error handling.
package props

import (
	"fmt"
	"math"
	"strconv"

	"github.com/fernwhistle/propworld/internal/intern"
)

// Kind identifies the payload type of a Value.
type Kind int

const (
	// KindBool is a boolean value. The zero Value is Bool(false).
	KindBool Kind = iota
	// KindNum is a float64 value.
	KindNum
	// KindStr is an interned string value.
	KindStr
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNum:
		return "num"
	case KindStr:
		return "str"
	default:
		return "invalid"
	}
}

// Value is a boolean, number, or string. The zero Value is Bool(false).
//
// Accessors never fail: reading a Value as a type it does not hold returns
// the zero value of that type. Two values are equal only if they hold equal
// payloads of the same kind; a NaN number is equal to nothing.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    intern.Atom
}

// BoolValue returns a boolean value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// NumValue returns a numeric value.
func NumValue(n float64) Value {
	return Value{kind: KindNum, n: n}
}

// StrValue returns a string value.
func StrValue(s string) Value {
	return Value{kind: KindStr, s: intern.Make(s)}
}

// AtomValue returns a string value from an already-interned atom.
func AtomValue(a intern.Atom) Value {
	return Value{kind: KindStr, s: a}
}

// ValueOf converts a dynamically-typed scalar into a Value. Integers and
// floats become numbers, booleans and strings map directly. Unsupported
// types report an error; this is the one place the package is strict, since
// it guards data coming in from decoded documents.
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case bool:
		return BoolValue(v), nil
	case int:
		return NumValue(float64(v)), nil
	case int64:
		return NumValue(float64(v)), nil
	case float64:
		return NumValue(v), nil
	case float32:
		return NumValue(float64(v)), nil
	case string:
		return StrValue(v), nil
	case Value:
		return v, nil
	default:
		return Value{}, fmt.Errorf("unsupported property value type %T", v)
	}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean payload, or false if the value is not a boolean.
func (v Value) Bool() bool {
	if v.kind != KindBool {
		return false
	}
	return v.b
}

// Num returns the numeric payload, or 0 if the value is not a number.
func (v Value) Num() float64 {
	if v.kind != KindNum {
		return 0
	}
	return v.n
}

// Str returns the string payload, or "" if the value is not a string.
func (v Value) Str() string {
	if v.kind != KindStr {
		return ""
	}
	return v.s.String()
}

// Atom returns the interned string payload, or the empty atom if the value
// is not a string.
func (v Value) Atom() intern.Atom {
	if v.kind != KindStr {
		return intern.Atom{}
	}
	return v.s
}

// Equal reports whether two values hold equal payloads of the same kind.
// Values of different kinds are never equal, and NaN is equal to nothing.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindNum:
		return v.n == o.n
	default:
		return v.s == o.s
	}
}

// Compare orders two values of the same kind. Booleans order false before
// true, numbers and strings order naturally. Values of different kinds, and
// comparisons involving NaN, are unordered and report ok=false.
func (v Value) Compare(o Value) (cmp int, ok bool) {
	if v.kind != o.kind {
		return 0, false
	}
	switch v.kind {
	case KindBool:
		switch {
		case v.b == o.b:
			return 0, true
		case o.b:
			return -1, true
		default:
			return 1, true
		}
	case KindNum:
		if math.IsNaN(v.n) || math.IsNaN(o.n) {
			return 0, false
		}
		switch {
		case v.n < o.n:
			return -1, true
		case v.n > o.n:
			return 1, true
		default:
			return 0, true
		}
	default:
		return v.s.Compare(o.s), true
	}
}

// Add returns v + o as a number. Non-numeric operands act as zero.
func (v Value) Add(o Value) Value {
	return NumValue(v.Num() + o.Num())
}

// Sub returns v - o as a number. Non-numeric operands act as zero.
func (v Value) Sub(o Value) Value {
	return NumValue(v.Num() - o.Num())
}

// Mul returns v * o as a number. Non-numeric operands act as zero.
func (v Value) Mul(o Value) Value {
	return NumValue(v.Num() * o.Num())
}

// Div returns v / o as a number. A non-numeric dividend acts as zero, but a
// non-numeric divisor acts as one: dividing by a non-number leaves the
// dividend unchanged rather than producing NaN.
func (v Value) Div(o Value) Value {
	if v.kind != KindNum {
		return NumValue(0)
	}
	if o.kind != KindNum {
		return NumValue(v.n)
	}
	return NumValue(v.n / o.n)
}

// String renders the payload: "true", "42", "hello".
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNum:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	default:
		return v.s.String()
	}
}

// Scalar returns the payload as a dynamically-typed scalar, suitable for
// encoding into documents. Whole numbers are returned as int64 so encoded
// YAML reads naturally ("100" rather than "100.0").
func (v Value) Scalar() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNum:
		if v.n == math.Trunc(v.n) && !math.IsInf(v.n, 0) && math.Abs(v.n) < 1<<53 {
			return int64(v.n)
		}
		return v.n
	default:
		return v.s.String()
	}
}
