package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/bounded/internal/decl"
)

// Error code constants - unified across all CLI commands. Expression and
// declaration failures keep the E2xx and E3xx codes of their packages.
const (
	ErrCodeGeneric        = "E001" // Generic/unknown error
	ErrCodeInvalidArgs    = "E002" // Bad command-line argument
	ErrCodeNoDeclarations = "E003" // Input holds no declarations
	ErrCodeLoadFailed     = "E004" // Declarations could not be read
	ErrCodeNotFound       = "E005" // Path not found
	ErrCodeGenerateFailed = "E006" // Source generation failed
	ErrCodeWriteFailed    = "E007" // File write error
)

// LoadResult holds the declarations that resolved successfully.
type LoadResult struct {
	Declarations []*decl.Resolved
	Read         int // declarations read before resolution
}

// LoadError is a load or resolution failure with its source position.
type LoadError struct {
	Code    string
	Field   string
	Message string
	Pos     decl.Position
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadDeclarations reads and resolves every declaration at path, collecting
// one error per invalid declaration. A nil result means nothing could be
// loaded at all.
func LoadDeclarations(path string, opts decl.Options) (*LoadResult, []error) {
	if _, err := os.Stat(path); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("declarations not found: %s", path)}}
	}

	decls, errs := decl.Load(path)
	if len(decls) == 0 && len(errs) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoDeclarations, Message: fmt.Sprintf("no declarations found in %s", path)}}
	}

	resolved, resolveErrs := decl.ResolveAll(decls, opts)
	errs = append(errs, resolveErrs...)

	out := make([]error, len(errs))
	for i, err := range errs {
		out[i] = convertDeclError(err)
	}
	return &LoadResult{Declarations: resolved, Read: len(decls)}, out
}

// convertDeclError converts a declaration error to a LoadError with position info.
func convertDeclError(err error) *LoadError {
	var declErr *decl.Error
	if errors.As(err, &declErr) {
		return &LoadError{
			Code:    declErr.Code,
			Field:   declErr.Field,
			Message: fmt.Sprintf("%s: %s", declErr.Field, declErr.Message),
			Pos:     declErr.Pos,
		}
	}
	return &LoadError{Code: ErrCodeLoadFailed, Message: err.Error()}
}
