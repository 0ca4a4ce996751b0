package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bounded/internal/decl"
)

// CheckResult holds the outcome of checking a declaration file.
type CheckResult struct {
	Valid        bool             `json:"valid"`
	Declarations []*decl.Resolved `json:"declarations,omitempty"`
	Errors       []CheckError     `json:"errors,omitempty"`
}

// CheckError is one invalid declaration.
type CheckError struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var maxVariants uint64

	cmd := &cobra.Command{
		Use:   "check <path>",
		Short: "Validate declarations without generating code",
		Long: `Load declarations from a CUE package (directory or .cue file) or a YAML
file and resolve every range, reporting all invalid declarations.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], decl.Options{MaxVariants: maxVariants}, cmd)
		},
	}

	cmd.Flags().Uint64Var(&maxVariants, "max-variants", decl.DefaultMaxVariants, "largest enum range accepted")

	return cmd
}

func runCheck(opts *RootOptions, path string, declOpts decl.Options, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	result, errs := LoadDeclarations(path, declOpts)
	if result == nil {
		return outputLoadError(formatter, errs[0])
	}
	formatter.VerboseLog("Read %d declaration(s) from %s", result.Read, path)

	if len(errs) > 0 {
		return outputCheckErrors(formatter, errs)
	}

	if formatter.isJSON() {
		return formatter.Success(CheckResult{Valid: true, Declarations: result.Declarations})
	}
	fmt.Fprintf(formatter.Writer, "✓ %d declaration(s) valid\n", len(result.Declarations))
	for _, d := range result.Declarations {
		fmt.Fprintf(formatter.Writer, "  %s: %s %s %s\n", d.Name, d.Kind, d.Repr.Name, d.Interval())
	}
	return nil
}

// outputLoadError reports a failure that stopped loading altogether.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return formatter.fail(ExitCommandError, loadErr.Code, loadErr.Message, nil)
	}
	return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
}

// outputCheckErrors reports every invalid declaration.
func outputCheckErrors(formatter *OutputFormatter, errs []error) error {
	checkErrs := make([]CheckError, 0, len(errs))
	for _, err := range errs {
		le := convertLoadError(err)
		checkErrs = append(checkErrs, CheckError{
			Code:    le.Code,
			Field:   le.Field,
			Message: le.Message,
			File:    le.Pos.File,
			Line:    le.Pos.Line,
			Column:  le.Pos.Column,
		})
	}

	if formatter.isJSON() {
		response := CLIResponse{
			Status: "error",
			Data:   CheckResult{Valid: false, Errors: checkErrs},
			Error: &CLIError{
				Code:    checkErrs[0].Code,
				Message: checkErrs[0].Message,
			},
		}
		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(formatter.Writer, "✗ Validation failed")
		fmt.Fprintln(formatter.Writer)
		for _, ce := range checkErrs {
			if ce.Line > 0 {
				fmt.Fprintf(formatter.Writer, "%s:%d\n", ce.File, ce.Line)
			}
			fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", ce.Code, ce.Message)
		}
	}

	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}

func convertLoadError(err error) *LoadError {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr
	}
	return convertDeclError(err)
}
