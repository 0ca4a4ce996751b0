package constexpr

import (
	"errors"
	"fmt"
)

// Error codes (E200-E299).
const (
	ErrCodeSyntax         = "E201" // not a well-formed expression
	ErrCodeUnsupported    = "E202" // construct outside the bound grammar
	ErrCodeLiteral        = "E203" // non-integer or oversized literal
	ErrCodeDivisionByZero = "E204" // divisor evaluated to zero
	ErrCodeOverflow       = "E205" // result does not fit in int64
	ErrCodeOpenRange      = "E206" // a closed range was required
	ErrCodeRangeSyntax    = "E207" // malformed a..b / a..=b
)

// Error describes why an expression could not be parsed or evaluated.
type Error struct {
	// Code identifies the error category.
	Code string

	// Offset is the byte offset of the offending construct in the source.
	Offset int

	// Construct names the rejected syntax, e.g. `identifier "x"` or
	// "operator <<". Empty for evaluation errors.
	Construct string

	// Message is a human-readable description.
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: column %d: %s", e.Code, e.Offset+1, e.Message)
}

func newError(code string, offset int, format string, args ...any) *Error {
	return &Error{Code: code, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode returns the code of an *Error in err's chain, or "".
func ErrorCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsUnsupported reports whether err rejects syntax outside the grammar.
func IsUnsupported(err error) bool {
	switch ErrorCode(err) {
	case ErrCodeUnsupported, ErrCodeLiteral:
		return true
	}
	return false
}

// IsDivisionByZero reports whether err is a division or remainder by zero.
func IsDivisionByZero(err error) bool {
	return ErrorCode(err) == ErrCodeDivisionByZero
}
