package bounded

import (
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Primitive-width helpers. Each checked* function reports ErrOverflow or
// ErrDivideByZero instead of letting Go wrap silently, so the default
// operators can fail the way a debug build of a checked language would.

func bitsOf[T constraints.Integer]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

func isSigned[T constraints.Integer]() bool {
	return ^T(0) < 0
}

func nativeMin[T constraints.Integer]() T {
	if isSigned[T]() {
		return T(1) << (bitsOf[T]() - 1)
	}
	return 0
}

func nativeMax[T constraints.Integer]() T {
	return ^nativeMin[T]()
}

// minusOne is -1 for signed T. Callers must check isSigned first.
func minusOne[T constraints.Integer]() T {
	return ^T(0)
}

func checkedAdd[T constraints.Integer](a, b T) (T, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return s, ErrOverflow
	}
	return s, nil
}

func checkedSub[T constraints.Integer](a, b T) (T, error) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return d, ErrOverflow
	}
	return d, nil
}

func checkedMul[T constraints.Integer](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if isSigned[T]() {
		lo, m1 := nativeMin[T](), minusOne[T]()
		if (a == m1 && b == lo) || (b == m1 && a == lo) {
			return lo, ErrOverflow
		}
	}
	p := a * b
	if p/b != a {
		return p, ErrOverflow
	}
	return p, nil
}

// divCheck rejects the two failing cases shared by every division flavour.
func divCheck[T constraints.Integer](a, b T) error {
	if b == 0 {
		return ErrDivideByZero
	}
	if isSigned[T]() && a == nativeMin[T]() && b == minusOne[T]() {
		return ErrOverflow
	}
	return nil
}

func checkedDiv[T constraints.Integer](a, b T) (T, error) {
	if err := divCheck(a, b); err != nil {
		return 0, err
	}
	return a / b, nil
}

func checkedRem[T constraints.Integer](a, b T) (T, error) {
	if err := divCheck(a, b); err != nil {
		return 0, err
	}
	return a % b, nil
}

// checkedDivEuclid rounds the quotient so that the remainder is never negative.
func checkedDivEuclid[T constraints.Integer](a, b T) (T, error) {
	if err := divCheck(a, b); err != nil {
		return 0, err
	}
	q := a / b
	if a%b < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}
	return q, nil
}

func checkedRemEuclid[T constraints.Integer](a, b T) (T, error) {
	if err := divCheck(a, b); err != nil {
		return 0, err
	}
	r := a % b
	if r < 0 {
		if b < 0 {
			r -= b
		} else {
			r += b
		}
	}
	return r, nil
}

// checkedNeg succeeds for unsigned T only when a is zero.
func checkedNeg[T constraints.Integer](a T) (T, error) {
	if isSigned[T]() {
		if a == nativeMin[T]() {
			return a, ErrOverflow
		}
		return -a, nil
	}
	if a != 0 {
		return a, ErrOverflow
	}
	return 0, nil
}

func checkedAbs[T constraints.Signed](a T) (T, error) {
	if a == nativeMin[T]() {
		return a, ErrOverflow
	}
	if a < 0 {
		return -a, nil
	}
	return a, nil
}

// checkedPow is exponentiation by squaring. The base is only squared while
// a higher power is still needed, so an overflow always means the result
// itself overflows.
func checkedPow[T constraints.Integer](base T, exp uint32) (T, error) {
	if exp == 0 {
		return 1, nil
	}
	acc := T(1)
	var err error
	for exp > 1 {
		if exp&1 == 1 {
			if acc, err = checkedMul(acc, base); err != nil {
				return acc, err
			}
		}
		exp /= 2
		if base, err = checkedMul(base, base); err != nil {
			return base, err
		}
	}
	return checkedMul(acc, base)
}

func saturatingAdd[T constraints.Integer](a, b T) T {
	s, err := checkedAdd(a, b)
	if err == nil {
		return s
	}
	if b > 0 {
		return nativeMax[T]()
	}
	return nativeMin[T]()
}

func saturatingSub[T constraints.Integer](a, b T) T {
	d, err := checkedSub(a, b)
	if err == nil {
		return d
	}
	if b > 0 {
		return nativeMin[T]()
	}
	return nativeMax[T]()
}

func saturatingMul[T constraints.Integer](a, b T) T {
	p, err := checkedMul(a, b)
	if err == nil {
		return p
	}
	if (a < 0) != (b < 0) {
		return nativeMin[T]()
	}
	return nativeMax[T]()
}

func saturatingPow[T constraints.Integer](base T, exp uint32) T {
	p, err := checkedPow(base, exp)
	if err == nil {
		return p
	}
	if base < 0 && exp%2 == 1 {
		return nativeMin[T]()
	}
	return nativeMax[T]()
}

func formatRaw[T constraints.Integer](n T) string {
	if isSigned[T]() {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatUint(uint64(n), 10)
}

// parseRaw parses s as a T. base follows strconv: 0 accepts Go literal syntax.
func parseRaw[T constraints.Integer](s string, base int) (T, error) {
	if isSigned[T]() {
		n, err := strconv.ParseInt(s, base, int(bitsOf[T]()))
		return T(n), err
	}
	n, err := strconv.ParseUint(s, base, int(bitsOf[T]()))
	return T(n), err
}

// fromInt64 converts n to T when it fits.
func fromInt64[T constraints.Integer](n int64) (T, bool) {
	t := T(n)
	if isSigned[T]() {
		return t, int64(t) == n
	}
	return t, n >= 0 && uint64(t) == uint64(n)
}
