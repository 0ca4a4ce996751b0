package bounded

import (
	"cmp"
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Value is an integer of type T that belongs to its Range.
//
// Values are immutable; every operation returns a new Value carrying the
// receiver's range. Methods have value receivers except the *Assign family,
// so a Value and a *Value accept the same calls. The zero Value is 0 in the
// full range of T.
type Value[T constraints.Integer] struct {
	v T
	r Range[T]
}

// Get returns the underlying integer.
func (x Value[T]) Get() T {
	return x.v
}

// Range returns the range x was created in.
func (x Value[T]) Range() Range[T] {
	return x.r
}

// Compare returns -1, 0 or +1 comparing the underlying integers.
func (x Value[T]) Compare(y Value[T]) int {
	return cmp.Compare(x.v, y.v)
}

func (x Value[T]) String() string {
	return formatRaw(x.v)
}

// Format delegates every verb and flag to T, so %x, %08b and friends behave
// as they would on the raw integer.
func (x Value[T]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), x.v)
}

// Default operators. They panic with *ArithmeticError on primitive overflow,
// a zero divisor, or a result outside the range.

func (x Value[T]) must(op string, n T, err error) Value[T] {
	if err != nil {
		panic(&ArithmeticError{Op: op, Err: err})
	}
	y, ok := x.r.New(n)
	if !ok {
		panic(&ArithmeticError{Op: op, Err: ErrOutOfRange})
	}
	return y
}

// Add returns x + rhs.
func (x Value[T]) Add(rhs T) Value[T] {
	n, err := checkedAdd(x.v, rhs)
	return x.must("add", n, err)
}

// Sub returns x - rhs.
func (x Value[T]) Sub(rhs T) Value[T] {
	n, err := checkedSub(x.v, rhs)
	return x.must("subtract", n, err)
}

// Mul returns x * rhs.
func (x Value[T]) Mul(rhs T) Value[T] {
	n, err := checkedMul(x.v, rhs)
	return x.must("multiply", n, err)
}

// Div returns x / rhs, truncated toward zero.
func (x Value[T]) Div(rhs T) Value[T] {
	n, err := checkedDiv(x.v, rhs)
	return x.must("divide", n, err)
}

// Rem returns x % rhs with the sign of x.
func (x Value[T]) Rem(rhs T) Value[T] {
	n, err := checkedRem(x.v, rhs)
	return x.must("take remainder", n, err)
}

// DivEuclid returns the quotient of Euclidean division of x by rhs.
func (x Value[T]) DivEuclid(rhs T) Value[T] {
	n, err := checkedDivEuclid(x.v, rhs)
	return x.must("divide", n, err)
}

// RemEuclid returns the least nonnegative remainder of x (mod rhs).
func (x Value[T]) RemEuclid(rhs T) Value[T] {
	n, err := checkedRemEuclid(x.v, rhs)
	return x.must("divide with remainder", n, err)
}

// Pow raises x to the power exp by squaring.
func (x Value[T]) Pow(exp uint32) Value[T] {
	n, err := checkedPow(x.v, exp)
	return x.must("raise to power", n, err)
}

// AddValue returns x + rhs.Get().
func (x Value[T]) AddValue(rhs Value[T]) Value[T] { return x.Add(rhs.v) }

// SubValue returns x - rhs.Get().
func (x Value[T]) SubValue(rhs Value[T]) Value[T] { return x.Sub(rhs.v) }

// MulValue returns x * rhs.Get().
func (x Value[T]) MulValue(rhs Value[T]) Value[T] { return x.Mul(rhs.v) }

// DivValue returns x / rhs.Get().
func (x Value[T]) DivValue(rhs Value[T]) Value[T] { return x.Div(rhs.v) }

// RemValue returns x % rhs.Get().
func (x Value[T]) RemValue(rhs Value[T]) Value[T] { return x.Rem(rhs.v) }

// Compound assignment. Each re-validates and panics like its operator.

func (x *Value[T]) AddAssign(rhs T) { *x = x.Add(rhs) }
func (x *Value[T]) SubAssign(rhs T) { *x = x.Sub(rhs) }
func (x *Value[T]) MulAssign(rhs T) { *x = x.Mul(rhs) }
func (x *Value[T]) DivAssign(rhs T) { *x = x.Div(rhs) }
func (x *Value[T]) RemAssign(rhs T) { *x = x.Rem(rhs) }

func (x *Value[T]) AddAssignValue(rhs Value[T]) { *x = x.Add(rhs.v) }
func (x *Value[T]) SubAssignValue(rhs Value[T]) { *x = x.Sub(rhs.v) }
func (x *Value[T]) MulAssignValue(rhs Value[T]) { *x = x.Mul(rhs.v) }
func (x *Value[T]) DivAssignValue(rhs Value[T]) { *x = x.Div(rhs.v) }
func (x *Value[T]) RemAssignValue(rhs Value[T]) { *x = x.Rem(rhs.v) }

// Checked operators. A primitive failure and an out-of-range result both
// yield false.

func (x Value[T]) check(n T, err error) (Value[T], bool) {
	if err != nil {
		return Value[T]{}, false
	}
	return x.r.New(n)
}

// CheckedAdd is checked integer addition.
func (x Value[T]) CheckedAdd(rhs T) (Value[T], bool) { return x.check(checkedAdd(x.v, rhs)) }

// CheckedSub is checked integer subtraction.
func (x Value[T]) CheckedSub(rhs T) (Value[T], bool) { return x.check(checkedSub(x.v, rhs)) }

// CheckedMul is checked integer multiplication.
func (x Value[T]) CheckedMul(rhs T) (Value[T], bool) { return x.check(checkedMul(x.v, rhs)) }

// CheckedDiv is checked integer division.
func (x Value[T]) CheckedDiv(rhs T) (Value[T], bool) { return x.check(checkedDiv(x.v, rhs)) }

// CheckedDivEuclid is checked Euclidean division.
func (x Value[T]) CheckedDivEuclid(rhs T) (Value[T], bool) {
	return x.check(checkedDivEuclid(x.v, rhs))
}

// CheckedRem is checked integer remainder.
func (x Value[T]) CheckedRem(rhs T) (Value[T], bool) { return x.check(checkedRem(x.v, rhs)) }

// CheckedRemEuclid is checked Euclidean remainder.
func (x Value[T]) CheckedRemEuclid(rhs T) (Value[T], bool) {
	return x.check(checkedRemEuclid(x.v, rhs))
}

// CheckedNeg is checked negation. For unsigned T it succeeds only for zero.
func (x Value[T]) CheckedNeg() (Value[T], bool) { return x.check(checkedNeg(x.v)) }

// CheckedPow is checked exponentiation.
func (x Value[T]) CheckedPow(exp uint32) (Value[T], bool) { return x.check(checkedPow(x.v, exp)) }

// Saturating operators clamp at the width of T first, then at the range.

// SaturatingAdd is saturating integer addition.
func (x Value[T]) SaturatingAdd(rhs T) Value[T] { return x.r.NewSaturating(saturatingAdd(x.v, rhs)) }

// SaturatingSub is saturating integer subtraction.
func (x Value[T]) SaturatingSub(rhs T) Value[T] { return x.r.NewSaturating(saturatingSub(x.v, rhs)) }

// SaturatingMul is saturating integer multiplication.
func (x Value[T]) SaturatingMul(rhs T) Value[T] { return x.r.NewSaturating(saturatingMul(x.v, rhs)) }

// SaturatingPow is saturating exponentiation.
func (x Value[T]) SaturatingPow(exp uint32) Value[T] {
	return x.r.NewSaturating(saturatingPow(x.v, exp))
}

// Wrapping operators compute the exact result and map it into the range the
// way NewWrapping does. They never panic.

// WrappingAdd is x + rhs wrapped into the range.
func (x Value[T]) WrappingAdd(rhs T) Value[T] {
	return x.wrapExact(new(big.Int).Add(toBig(x.v), toBig(rhs)))
}

// WrappingSub is x - rhs wrapped into the range.
func (x Value[T]) WrappingSub(rhs T) Value[T] {
	return x.wrapExact(new(big.Int).Sub(toBig(x.v), toBig(rhs)))
}

// WrappingMul is x * rhs wrapped into the range.
func (x Value[T]) WrappingMul(rhs T) Value[T] {
	return x.wrapExact(new(big.Int).Mul(toBig(x.v), toBig(rhs)))
}

func (x Value[T]) wrapExact(z *big.Int) Value[T] {
	lo := toBig(x.r.MinValue())
	size := new(big.Int).SetUint64(x.r.span())
	size.Add(size, big.NewInt(1))
	// big.Int.Mod is Euclidean.
	z.Sub(z, lo).Mod(z, size).Add(z, lo)
	if isSigned[T]() {
		return x.r.NewUnchecked(T(z.Int64()))
	}
	return x.r.NewUnchecked(T(z.Uint64()))
}

func toBig[T constraints.Integer](n T) *big.Int {
	if isSigned[T]() {
		return big.NewInt(int64(n))
	}
	return new(big.Int).SetUint64(uint64(n))
}
