package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/bounded"
	"github.com/roach88/bounded/internal/decl"
)

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	*RootOptions
	Enum        bool
	Values      []string
	MaxVariants uint64
}

// InspectResult describes a resolved range.
type InspectResult struct {
	Repr      string    `json:"repr"`
	Kind      decl.Kind `json:"kind"`
	NativeMin string    `json:"native_min"`
	NativeMax string    `json:"native_max"`
	Min       string    `json:"min"`
	Max       string    `json:"max"`
	Len       string    `json:"len"`
	Variants  int       `json:"variants,omitempty"`
	Samples   []Sample  `json:"samples,omitempty"`
}

// Sample shows how one raw value is admitted by the range.
type Sample struct {
	Input      string `json:"input"`
	InRange    bool   `json:"in_range"`
	Saturating string `json:"saturating"`
	Wrapping   string `json:"wrapping"`
}

func (r InspectResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "repr:    %s\n", r.Repr)
	fmt.Fprintf(&b, "kind:    %s\n", r.Kind)
	fmt.Fprintf(&b, "native:  [%s, %s]\n", r.NativeMin, r.NativeMax)
	fmt.Fprintf(&b, "range:   [%s, %s]\n", r.Min, r.Max)
	fmt.Fprintf(&b, "len:     %s", r.Len)
	if r.Variants > 0 {
		fmt.Fprintf(&b, "\nvariants: %d", r.Variants)
	}
	for _, s := range r.Samples {
		status := "in range"
		if !s.InRange {
			status = "out of range"
		}
		fmt.Fprintf(&b, "\n%s: %s, saturating %s, wrapping %s", s.Input, status, s.Saturating, s.Wrapping)
	}
	return b.String()
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "inspect <repr> <range>",
		Short: "Show the resolved bounds of a range",
		Long: `Resolve a range over a representation and print its effective minimum,
maximum and length. Each --value is run through the range's checked,
saturating and wrapping constructors.`,
		Example: `  boundgen inspect i8 -3..2
  boundgen inspect uint16 '3..=7' --value 8 --value 2`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Enum, "enum", false, "resolve as an enum (closed range required)")
	cmd.Flags().StringArrayVar(&opts.Values, "value", nil, "raw value to admit into the range (repeatable)")
	cmd.Flags().Uint64Var(&opts.MaxVariants, "max-variants", decl.DefaultMaxVariants, "largest enum range accepted")

	return cmd
}

func runInspect(opts *InspectOptions, reprName, rangeSrc string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	d := decl.Declaration{Name: "Inspect", Repr: reprName, Range: rangeSrc}
	if opts.Enum {
		d.Kind = decl.KindEnum
	}
	r, err := decl.Resolve(d, decl.Options{MaxVariants: opts.MaxVariants})
	if err != nil {
		return outputDeclError(formatter, err)
	}

	result := InspectResult{
		Repr:      r.Repr.Name,
		Kind:      r.Kind,
		NativeMin: r.Repr.MinString(),
		NativeMax: r.Repr.MaxString(),
		Min:       r.Repr.MinString(),
		Max:       r.Repr.MaxString(),
		Len:       "unknown",
		Variants:  len(r.Variants),
	}
	if !r.Min.Open {
		result.Min = r.Min.GoExpr()
	}
	if !r.Max.Open {
		result.Max = r.Max.GoExpr()
	}
	if n, ok := r.Len(); ok {
		result.Len = formatLen(n)
	}

	for _, in := range opts.Values {
		s, err := sample(r, in)
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeInvalidArgs, err.Error(), nil)
		}
		result.Samples = append(result.Samples, s)
	}

	return formatter.Success(result)
}

// formatLen renders a range length where 0 stands for 2^64.
func formatLen(n uint64) string {
	if n == 0 {
		return "18446744073709551616"
	}
	return strconv.FormatUint(n, 10)
}

// sample admits a raw value through the engine. Signed representations are
// checked in an int64 range and unsigned ones in a uint64 range with the
// same bounds, so results match the declared type.
func sample(r *decl.Resolved, input string) (Sample, error) {
	if _, ok := r.Len(); !ok {
		return Sample{}, fmt.Errorf("cannot sample %s: bounds are not constant integers", r.Interval())
	}

	if r.Repr.Signed {
		n, err := strconv.ParseInt(input, 0, r.Repr.Bits)
		if err != nil {
			return Sample{}, fmt.Errorf("value %q is not a valid %s", input, r.Repr.Name)
		}
		lo, hi := r.Repr.MinInt64(), int64(r.Repr.MaxUint64())
		if !r.Min.Open {
			lo = r.Min.Value
		}
		if !r.Max.Open {
			hi = r.Max.Value
		}
		return sampleOf(bounded.MustRange(lo, hi), n, input), nil
	}

	n, err := strconv.ParseUint(input, 0, r.Repr.Bits)
	if err != nil {
		return Sample{}, fmt.Errorf("value %q is not a valid %s", input, r.Repr.Name)
	}
	lo, hi := uint64(0), r.Repr.MaxUint64()
	if !r.Min.Open {
		lo = uint64(r.Min.Value)
	}
	if !r.Max.Open {
		hi = uint64(r.Max.Value)
	}
	return sampleOf(bounded.MustRange(lo, hi), n, input), nil
}

func sampleOf[T int64 | uint64](rng bounded.Range[T], n T, input string) Sample {
	_, ok := rng.New(n)
	return Sample{
		Input:      input,
		InRange:    ok,
		Saturating: rng.NewSaturating(n).String(),
		Wrapping:   rng.NewWrapping(n).String(),
	}
}
