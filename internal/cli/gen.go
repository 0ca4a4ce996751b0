package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/bounded/internal/decl"
	"github.com/roach88/bounded/internal/gen"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	*RootOptions
	Output      string // output file path; stdout when empty
	Package     string
	ImportPath  string
	MaxVariants uint64
}

// GenResult summarises a generation run.
type GenResult struct {
	File   string `json:"file,omitempty"`
	Types  int    `json:"types"`
	Source string `json:"source,omitempty"`
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gen <path>",
		Short: "Generate Go types from declarations",
		Long: `Generate a Go source file declaring one type per bounded declaration.

Struct declarations become aliases of bounded.Value with a range variable.
Enum declarations become named integer types with a constant per value.
Generation fails if any declaration is invalid.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")
	cmd.Flags().StringVar(&opts.Package, "package", "types", "package name of the generated file")
	cmd.Flags().StringVar(&opts.ImportPath, "import", gen.DefaultImportPath, "import path of the bounded package")
	cmd.Flags().Uint64Var(&opts.MaxVariants, "max-variants", decl.DefaultMaxVariants, "largest enum range accepted")

	return cmd
}

func runGen(opts *GenOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	result, errs := LoadDeclarations(path, decl.Options{MaxVariants: opts.MaxVariants})
	if result == nil {
		return outputLoadError(formatter, errs[0])
	}
	if len(errs) > 0 {
		return outputCheckErrors(formatter, errs)
	}
	formatter.VerboseLog("Resolved %d declaration(s) from %s", len(result.Declarations), path)

	src, err := gen.Generate(result.Declarations, gen.Options{
		Package:    opts.Package,
		ImportPath: opts.ImportPath,
	})
	if err != nil {
		return formatter.fail(ExitFailure, ErrCodeGenerateFailed, err.Error(), nil)
	}

	if opts.Output == "" {
		if formatter.isJSON() {
			return formatter.Success(GenResult{Types: len(result.Declarations), Source: string(src)})
		}
		_, err := formatter.Writer.Write(src)
		return err
	}

	if err := os.WriteFile(opts.Output, src, 0644); err != nil {
		_ = formatter.Error(ErrCodeWriteFailed, fmt.Sprintf("writing %s: %v", opts.Output, err), nil)
		return WrapExitError(ExitCommandError, ErrCodeWriteFailed+": writing "+opts.Output, err)
	}
	slog.Info("generated bounded types", "file", opts.Output, "types", len(result.Declarations))

	if formatter.isJSON() {
		return formatter.Success(GenResult{File: opts.Output, Types: len(result.Declarations)})
	}
	fmt.Fprintf(formatter.Writer, "✓ Generated %d type(s) in %s\n", len(result.Declarations), opts.Output)
	return nil
}
