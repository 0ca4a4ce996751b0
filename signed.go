package bounded

import "golang.org/x/exp/constraints"

// Operations defined only for signed representations.

// Neg returns -x, panicking on overflow or when -x is out of range.
func Neg[T constraints.Signed](x Value[T]) Value[T] {
	n, err := checkedNeg(x.v)
	return x.must("negate", n, err)
}

// Abs returns |x|. The absolute value of the native minimum overflows T and
// panics rather than wrapping back to a negative number.
func Abs[T constraints.Signed](x Value[T]) Value[T] {
	n, err := checkedAbs(x.v)
	return x.must("take absolute value", n, err)
}

// CheckedAbs is checked absolute value.
func CheckedAbs[T constraints.Signed](x Value[T]) (Value[T], bool) {
	return x.check(checkedAbs(x.v))
}

// SaturatingNeg is saturating negation.
func SaturatingNeg[T constraints.Signed](x Value[T]) Value[T] {
	n, err := checkedNeg(x.v)
	if err != nil {
		n = nativeMax[T]()
	}
	return x.r.NewSaturating(n)
}

// SaturatingAbs is saturating absolute value.
func SaturatingAbs[T constraints.Signed](x Value[T]) Value[T] {
	n, err := checkedAbs(x.v)
	if err != nil {
		n = nativeMax[T]()
	}
	return x.r.NewSaturating(n)
}
