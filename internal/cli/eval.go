package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/bounded/internal/constexpr"
)

// EvalResult is the value of an expression or the bounds of a range.
type EvalResult struct {
	Expr      string `json:"expr"`
	Canonical string `json:"canonical"`
	Value     *int64 `json:"value,omitempty"`
	Min       *int64 `json:"min,omitempty"`
	Max       *int64 `json:"max,omitempty"`
}

func (r EvalResult) String() string {
	if r.Value != nil {
		return strconv.FormatInt(*r.Value, 10)
	}
	var b strings.Builder
	if r.Min != nil {
		b.WriteString(strconv.FormatInt(*r.Min, 10))
	}
	if r.Max == nil {
		b.WriteString("..")
		return b.String()
	}
	b.WriteString("..=")
	b.WriteString(strconv.FormatInt(*r.Max, 10))
	return b.String()
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expr>",
		Short: "Evaluate a bound expression or range",
		Long: `Evaluate a constant bound expression such as "3*4-1", or a range such as
"-8..6+2". Half-open ranges are reported with an inclusive upper bound.

Only integer literals, unary - and ~, the operators + - * / % ^ & | and
parentheses are accepted.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runEval(opts *RootOptions, src string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	result := EvalResult{Expr: src}
	if strings.Contains(src, "..") {
		r, err := constexpr.ParseRange(src)
		if err != nil {
			return outputExprError(formatter, src, err)
		}
		b, err := r.Eval()
		if err != nil {
			return outputExprError(formatter, src, err)
		}
		result.Canonical = r.String()
		if b.HasMin {
			result.Min = &b.Min
		}
		if b.HasMax {
			result.Max = &b.Max
		}
	} else {
		e, err := constexpr.Parse(src)
		if err != nil {
			return outputExprError(formatter, src, err)
		}
		v, err := constexpr.Evaluate(e)
		if err != nil {
			return outputExprError(formatter, src, err)
		}
		result.Canonical = constexpr.Format(e)
		result.Value = &v
	}

	formatter.VerboseLog("canonical form: %s", result.Canonical)
	return formatter.Success(result)
}

// outputExprError reports an expression error, pointing at the offending
// column in text mode.
func outputExprError(formatter *OutputFormatter, src string, err error) error {
	var exprErr *constexpr.Error
	if !errors.As(err, &exprErr) {
		return formatter.fail(ExitFailure, ErrCodeGeneric, err.Error(), nil)
	}

	details := map[string]any{"offset": exprErr.Offset}
	if exprErr.Construct != "" {
		details["construct"] = exprErr.Construct
	}
	failure := formatter.fail(ExitFailure, exprErr.Code, exprErr.Message, details)
	if !formatter.isJSON() {
		fmt.Fprintf(formatter.Writer, "  %s\n  %s^\n", src, strings.Repeat(" ", exprErr.Offset))
	}
	return failure
}
