package bounded

import (
	"cmp"
	"database/sql/driver"
	"fmt"

	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"
)

// Bounds supplies a range at the type level. Implementations are normally
// empty structs whose Range method returns a package-level variable:
//
//	var PortRange = bounded.RangeFrom[uint16](1024)
//
//	type PortBounds struct{}
//
//	func (PortBounds) Range() bounded.Range[uint16] { return PortRange }
//
//	type Port = bounded.Int[uint16, PortBounds]
type Bounds[T constraints.Integer] interface {
	Range() Range[T]
}

// Int is an integer of type T confined to the range supplied by B.
//
// Unlike Value, the range is part of the type: two Int types with different
// B are distinct even when T is the same, and an Int never holds a value
// outside its range, including its zero value. The zero Int is the in-range
// value closest to 0, so 0 when the range contains it and the nearer bound
// otherwise.
//
// Operations mirror those of Value and report failures the same way.
type Int[T constraints.Integer, B Bounds[T]] struct {
	// off is the value minus anchor, in wrapping arithmetic.
	off T
}

// NewInt returns n as an Int if it is in the range of B.
func NewInt[T constraints.Integer, B Bounds[T]](n T) (Int[T, B], bool) {
	var x Int[T, B]
	if !x.Range().InRange(n) {
		return x, false
	}
	return x.with(n), true
}

// Range returns the range supplied by B.
func (Int[T, B]) Range() Range[T] {
	var b B
	return b.Range()
}

func (x Int[T, B]) anchor() T {
	return x.Range().NewSaturating(0).v
}

func (x Int[T, B]) with(n T) Int[T, B] {
	return Int[T, B]{off: n - x.anchor()}
}

func (x Int[T, B]) of(v Value[T]) Int[T, B] {
	return x.with(v.v)
}

func (x Int[T, B]) checked(v Value[T], ok bool) (Int[T, B], bool) {
	if !ok {
		return Int[T, B]{}, false
	}
	return x.of(v), true
}

// Get returns the underlying integer.
func (x Int[T, B]) Get() T {
	return x.anchor() + x.off
}

// Bounded returns x as a Value carrying the range of B.
func (x Int[T, B]) Bounded() Value[T] {
	return Value[T]{v: x.Get(), r: x.Range()}
}

// Compare returns -1, 0 or +1 comparing the underlying integers.
func (x Int[T, B]) Compare(y Int[T, B]) int {
	return cmp.Compare(x.Get(), y.Get())
}

func (x Int[T, B]) String() string {
	return formatRaw(x.Get())
}

// Format delegates every verb and flag to T.
func (x Int[T, B]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), x.Get())
}

// Add returns x + rhs, panicking like Value.Add.
func (x Int[T, B]) Add(rhs T) Int[T, B] { return x.of(x.Bounded().Add(rhs)) }

// Sub returns x - rhs, panicking like Value.Sub.
func (x Int[T, B]) Sub(rhs T) Int[T, B] { return x.of(x.Bounded().Sub(rhs)) }

// Mul returns x * rhs, panicking like Value.Mul.
func (x Int[T, B]) Mul(rhs T) Int[T, B] { return x.of(x.Bounded().Mul(rhs)) }

// Div returns x / rhs, panicking like Value.Div.
func (x Int[T, B]) Div(rhs T) Int[T, B] { return x.of(x.Bounded().Div(rhs)) }

// Rem returns x % rhs, panicking like Value.Rem.
func (x Int[T, B]) Rem(rhs T) Int[T, B] { return x.of(x.Bounded().Rem(rhs)) }

func (x Int[T, B]) CheckedAdd(rhs T) (Int[T, B], bool) { return x.checked(x.Bounded().CheckedAdd(rhs)) }
func (x Int[T, B]) CheckedSub(rhs T) (Int[T, B], bool) { return x.checked(x.Bounded().CheckedSub(rhs)) }
func (x Int[T, B]) CheckedMul(rhs T) (Int[T, B], bool) { return x.checked(x.Bounded().CheckedMul(rhs)) }
func (x Int[T, B]) CheckedDiv(rhs T) (Int[T, B], bool) { return x.checked(x.Bounded().CheckedDiv(rhs)) }
func (x Int[T, B]) CheckedRem(rhs T) (Int[T, B], bool) { return x.checked(x.Bounded().CheckedRem(rhs)) }

func (x Int[T, B]) SaturatingAdd(rhs T) Int[T, B] { return x.of(x.Bounded().SaturatingAdd(rhs)) }
func (x Int[T, B]) SaturatingSub(rhs T) Int[T, B] { return x.of(x.Bounded().SaturatingSub(rhs)) }
func (x Int[T, B]) SaturatingMul(rhs T) Int[T, B] { return x.of(x.Bounded().SaturatingMul(rhs)) }

func (x Int[T, B]) WrappingAdd(rhs T) Int[T, B] { return x.of(x.Bounded().WrappingAdd(rhs)) }
func (x Int[T, B]) WrappingSub(rhs T) Int[T, B] { return x.of(x.Bounded().WrappingSub(rhs)) }
func (x Int[T, B]) WrappingMul(rhs T) Int[T, B] { return x.of(x.Bounded().WrappingMul(rhs)) }

// Codecs. Decoding always checks against the range of B.

func (x *Int[T, B]) decode(f func(dst *T) error) error {
	n := x.Get()
	if err := f(&n); err != nil {
		return err
	}
	*x = x.with(n)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x Int[T, B]) MarshalText() ([]byte, error) { return x.Bounded().MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int[T, B]) UnmarshalText(text []byte) error {
	return x.decode(func(dst *T) error { return x.Range().DecodeText(dst, text) })
}

// MarshalJSON encodes x as a JSON number.
func (x Int[T, B]) MarshalJSON() ([]byte, error) { return x.Bounded().MarshalJSON() }

// UnmarshalJSON decodes a JSON number. A JSON null leaves x unchanged.
func (x *Int[T, B]) UnmarshalJSON(data []byte) error {
	return x.decode(func(dst *T) error { return x.Range().DecodeJSON(dst, data) })
}

// MarshalYAML encodes x as a YAML integer.
func (x Int[T, B]) MarshalYAML() (interface{}, error) { return x.Get(), nil }

// UnmarshalYAML decodes a YAML integer scalar.
func (x *Int[T, B]) UnmarshalYAML(node *yaml.Node) error {
	return x.decode(func(dst *T) error { return x.Range().DecodeYAML(dst, node) })
}

// Value implements driver.Valuer.
func (x Int[T, B]) Value() (driver.Value, error) { return x.Bounded().Value() }

// Scan implements sql.Scanner.
func (x *Int[T, B]) Scan(src any) error {
	return x.decode(func(dst *T) error { return x.Range().DecodeSQL(dst, src) })
}
