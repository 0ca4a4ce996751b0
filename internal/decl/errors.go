package decl

import (
	"errors"
	"fmt"
)

// Error codes (E300-E399).
const (
	ErrCodeDecode       = "E300" // malformed declaration file
	ErrCodeName         = "E301" // not a Go identifier
	ErrCodeRepr         = "E302" // unknown representation
	ErrCodeKind         = "E303" // kind other than struct or enum
	ErrCodeRange        = "E304" // range does not parse or evaluate
	ErrCodeOpenRange    = "E305" // enum range with an open side
	ErrCodeUnfit        = "E306" // bound outside the representation
	ErrCodeInverted     = "E307" // minimum exceeds maximum
	ErrCodeTooLarge     = "E308" // enum range exceeds MaxVariants
	ErrCodeDuplicate    = "E309" // name declared twice
	ErrCodeMissingField = "E310" // required field absent
)

// Error reports a problem with one declaration.
type Error struct {
	// Field is the dotted path of the offending field, e.g. "Percent.range".
	Field   string
	Code    string
	Message string
	Pos     Position

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s: %s", e.Pos, e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrorCode returns the code of a *Error in err's chain, or "".
func ErrorCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
