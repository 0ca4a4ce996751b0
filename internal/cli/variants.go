package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/bounded/internal/decl"
)

// VariantList is the ordered case list of an enum range.
type VariantList []decl.Variant

func (l VariantList) String() string {
	lines := make([]string, len(l))
	for i, v := range l {
		lines[i] = fmt.Sprintf("%s = %d", v.Name, v.Value)
	}
	return strings.Join(lines, "\n")
}

// NewVariantsCommand creates the variants command.
func NewVariantsCommand(rootOpts *RootOptions) *cobra.Command {
	var maxVariants uint64

	cmd := &cobra.Command{
		Use:   "variants <repr> <range>",
		Short: "List the enum cases of a closed range",
		Long: `List the case names generated for an enum range, in ascending order.
Negative values are named N<n>, zero Z0 and positive values P<n>.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			d := decl.Declaration{Name: "Variants", Repr: args[0], Kind: decl.KindEnum, Range: args[1]}
			r, err := decl.Resolve(d, decl.Options{MaxVariants: maxVariants})
			if err != nil {
				return outputDeclError(formatter, err)
			}
			return formatter.Success(VariantList(r.Variants))
		},
	}

	cmd.Flags().Uint64Var(&maxVariants, "max-variants", decl.DefaultMaxVariants, "largest enum range accepted")

	return cmd
}

// outputDeclError reports a single declaration error from a command-line
// declaration; the field prefix is dropped since the user typed no name.
func outputDeclError(formatter *OutputFormatter, err error) error {
	var declErr *decl.Error
	if errors.As(err, &declErr) {
		return formatter.fail(ExitFailure, declErr.Code, declErr.Message, nil)
	}
	return formatter.fail(ExitFailure, ErrCodeGeneric, err.Error(), nil)
}
