package constexpr

import (
	"fmt"
	"math"
	"math/bits"
)

// Evaluate folds e to an int64. Every intermediate result must fit in int64;
// overflow and division by zero are reported as *Error rather than wrapped.
func Evaluate(e Expr) (int64, error) {
	switch n := e.(type) {
	case *Lit:
		return n.Value, nil

	case *Group:
		return Evaluate(n.X)

	case *Unary:
		x, err := Evaluate(n.X)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case Neg:
			if x == math.MinInt64 {
				return 0, overflow(n.Offset, "-%d", x)
			}
			return -x, nil
		case Not:
			return ^x, nil
		}

	case *Binary:
		x, err := Evaluate(n.X)
		if err != nil {
			return 0, err
		}
		y, err := Evaluate(n.Y)
		if err != nil {
			return 0, err
		}
		return binary(n, x, y)
	}
	return 0, newError(ErrCodeUnsupported, exprOffset(e), "cannot evaluate %T", e)
}

// EvaluateString parses and evaluates src.
func EvaluateString(src string) (int64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return Evaluate(e)
}

func binary(n *Binary, x, y int64) (int64, error) {
	switch n.Op {
	case Add:
		s := x + y
		if (s > x) != (y > 0) {
			return 0, overflow(n.Offset, "%d + %d", x, y)
		}
		return s, nil
	case Sub:
		d := x - y
		if (d < x) != (y > 0) {
			return 0, overflow(n.Offset, "%d - %d", x, y)
		}
		return d, nil
	case Mul:
		if !mulFits(x, y) {
			return 0, overflow(n.Offset, "%d * %d", x, y)
		}
		return x * y, nil
	case Div:
		if y == 0 {
			return 0, newError(ErrCodeDivisionByZero, n.Offset, "attempt to divide %d by zero", x)
		}
		if x == math.MinInt64 && y == -1 {
			return 0, overflow(n.Offset, "%d / %d", x, y)
		}
		return x / y, nil
	case Rem:
		if y == 0 {
			return 0, newError(ErrCodeDivisionByZero, n.Offset, "attempt to calculate the remainder of %d with a divisor of zero", x)
		}
		if x == math.MinInt64 && y == -1 {
			return 0, overflow(n.Offset, "%d %% %d", x, y)
		}
		return x % y, nil
	case Xor:
		return x ^ y, nil
	case And:
		return x & y, nil
	case Or:
		return x | y, nil
	}
	return 0, newError(ErrCodeUnsupported, n.Offset, "unknown operator %v", n.Op)
}

func overflow(offset int, format string, args ...any) *Error {
	return newError(ErrCodeOverflow, offset, "%s overflows a 64-bit integer", fmt.Sprintf(format, args...))
}

// mulFits reports whether x*y is representable in int64.
func mulFits(x, y int64) bool {
	if x == 0 || y == 0 {
		return true
	}
	neg := (x < 0) != (y < 0)
	hi, lo := bits.Mul64(absU(x), absU(y))
	if hi != 0 {
		return false
	}
	if neg {
		return lo <= 1<<63
	}
	return lo <= math.MaxInt64
}

func absU(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

func exprOffset(e Expr) int {
	if e == nil {
		return 0
	}
	return e.Pos()
}
