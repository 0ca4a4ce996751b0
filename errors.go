package bounded

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is the cause of an ArithmeticError when the primitive
	// operation overflows T before the range is consulted.
	ErrOverflow = errors.New("overflow")

	// ErrDivideByZero is the cause of an ArithmeticError for a zero divisor.
	ErrDivideByZero = errors.New("division by zero")

	// ErrOutOfRange reports a result or decoded value outside [MinValue, MaxValue].
	ErrOutOfRange = errors.New("out of range")

	// ErrInvertedRange is returned by NewRange when min > max.
	ErrInvertedRange = errors.New("bounded: minimum exceeds maximum")
)

// ArithmeticError is the panic value of the default (non-checked,
// non-saturating) operators.
type ArithmeticError struct {
	// Op describes the operation, e.g. "add" or "take remainder".
	Op string

	// Err is ErrOverflow, ErrDivideByZero or ErrOutOfRange.
	Err error
}

func (e *ArithmeticError) Error() string {
	switch e.Err {
	case ErrOverflow:
		return fmt.Sprintf("bounded: attempted to %s with overflow", e.Op)
	case ErrDivideByZero:
		return fmt.Sprintf("bounded: attempted to %s by zero", e.Op)
	default:
		return fmt.Sprintf("bounded: attempted to %s out of range", e.Op)
	}
}

func (e *ArithmeticError) Unwrap() error {
	return e.Err
}

// RangeError is returned when a parsed or decoded integer does not belong
// to the receiving range.
type RangeError struct {
	Value string
	Min   string
	Max   string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("integer out of range, expected it to be between %s and %s", e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// IsArithmeticError reports whether err (or a panic value recovered as err)
// is an *ArithmeticError with the given cause. A nil cause matches any.
func IsArithmeticError(err, cause error) bool {
	var ae *ArithmeticError
	if !errors.As(err, &ae) {
		return false
	}
	return cause == nil || errors.Is(ae.Err, cause)
}
