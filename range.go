package bounded

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Range is the set of values [MinValue, MaxValue] a Value may hold.
//
// A side that was not given is open: it defaults to the native extreme of T
// and is never checked. The zero Range is the full range of T. Ranges are
// comparable and safe to copy.
type Range[T constraints.Integer] struct {
	lo, hi   T
	closedLo bool
	closedHi bool
}

// NewRange returns the closed range [min, max].
func NewRange[T constraints.Integer](min, max T) (Range[T], error) {
	if min > max {
		return Range[T]{}, fmt.Errorf("%w: %s > %s", ErrInvertedRange, formatRaw(min), formatRaw(max))
	}
	return Range[T]{lo: min, hi: max, closedLo: true, closedHi: true}, nil
}

// MustRange is like NewRange but panics on an inverted range. It is meant
// for package-level variables, including generated code.
func MustRange[T constraints.Integer](min, max T) Range[T] {
	r, err := NewRange(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// RangeFrom returns [min, native max of T].
func RangeFrom[T constraints.Integer](min T) Range[T] {
	return Range[T]{lo: min, closedLo: true}
}

// RangeTo returns [native min of T, max].
func RangeTo[T constraints.Integer](max T) Range[T] {
	return Range[T]{hi: max, closedHi: true}
}

// FullRange returns the range of every T. It equals the zero Range.
func FullRange[T constraints.Integer]() Range[T] {
	return Range[T]{}
}

// MinValue is the smallest value of the range (MIN_VALUE).
func (r Range[T]) MinValue() T {
	if r.closedLo {
		return r.lo
	}
	return nativeMin[T]()
}

// MaxValue is the largest value of the range (MAX_VALUE).
func (r Range[T]) MaxValue() T {
	if r.closedHi {
		return r.hi
	}
	return nativeMax[T]()
}

// Min returns the smallest Value of the range (MIN).
func (r Range[T]) Min() Value[T] {
	return Value[T]{v: r.MinValue(), r: r}
}

// Max returns the largest Value of the range (MAX).
func (r Range[T]) Max() Value[T] {
	return Value[T]{v: r.MaxValue(), r: r}
}

// Len is the number of values in the range (RANGE).
//
// It is computed in uint64 so that full-width ranges of types narrower than
// 64 bits do not overflow T. The only unrepresentable count, 2^64 for the
// full range of a 64-bit type, is reported as 0.
func (r Range[T]) Len() uint64 {
	return r.span() + 1
}

// span is MaxValue - MinValue, exact for every T up to 64 bits.
func (r Range[T]) span() uint64 {
	return uint64(r.MaxValue()) - uint64(r.MinValue())
}

// IsFull reports whether every T belongs to the range.
func (r Range[T]) IsFull() bool {
	return r.MinValue() == nativeMin[T]() && r.MaxValue() == nativeMax[T]()
}

// InRange reports whether MinValue <= n <= MaxValue. An open side is not checked.
func (r Range[T]) InRange(n T) bool {
	return (!r.closedLo || n >= r.lo) && (!r.closedHi || n <= r.hi)
}

// New returns n as a Value if it is in range.
func (r Range[T]) New(n T) (Value[T], bool) {
	if !r.InRange(n) {
		return Value[T]{}, false
	}
	return Value[T]{v: n, r: r}, true
}

// NewUnchecked returns n as a Value without checking it.
//
// The caller must guarantee MinValue <= n <= MaxValue. Violating this breaks
// the invariant every other operation relies on; the result of later
// arithmetic on such a value is unspecified. Builds tagged boundeddebug
// panic instead.
func (r Range[T]) NewUnchecked(n T) Value[T] {
	if debugAssertions && !r.InRange(n) {
		panic(&ArithmeticError{Op: "construct unchecked value", Err: ErrOutOfRange})
	}
	return Value[T]{v: n, r: r}
}

// NewSaturating clamps n to MinValue when too low and to MaxValue when too high.
func (r Range[T]) NewSaturating(n T) Value[T] {
	if r.closedLo && n < r.lo {
		return r.Min()
	}
	if r.closedHi && n > r.hi {
		return r.Max()
	}
	return Value[T]{v: n, r: r}
}

// NewWrapping maps any n into the range with modulo arithmetic anchored at
// MinValue: the result is ((n - MinValue) mod_euclid Len) + MinValue.
// Values already in range are returned unchanged.
//
// The distance from the nearest bound is taken in uint64, which is exact for
// negative n, negative MinValue and ranges of any length.
func (r Range[T]) NewWrapping(n T) Value[T] {
	if r.InRange(n) {
		return Value[T]{v: n, r: r}
	}
	lo, hi := r.MinValue(), r.MaxValue()
	span := r.span()
	if span == math.MaxUint64 {
		return Value[T]{v: n, r: r}
	}
	size := span + 1
	if n > hi {
		k := (uint64(n) - uint64(hi) - 1) % size
		return Value[T]{v: lo + T(k), r: r}
	}
	k := (uint64(lo) - uint64(n) - 1) % size
	return Value[T]{v: hi - T(k), r: r}
}

// Parse reads s using Go integer literal syntax and checks it against the range.
func (r Range[T]) Parse(s string) (Value[T], error) {
	n, err := parseRaw[T](s, 0)
	if err != nil {
		return Value[T]{}, err
	}
	return r.validate(n, s)
}

func (r Range[T]) validate(n T, text string) (Value[T], error) {
	v, ok := r.New(n)
	if !ok {
		return Value[T]{}, r.rangeError(text)
	}
	return v, nil
}

// String renders the range as an inclusive interval, e.g. "[-3, 1]".
func (r Range[T]) String() string {
	return fmt.Sprintf("[%s, %s]", formatRaw(r.MinValue()), formatRaw(r.MaxValue()))
}
