// Command boundgen evaluates range expressions and generates bounded
// integer types from CUE or YAML declarations.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/bounded/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands print their own diagnostics; only flag and argument
		// errors from cobra reach here unreported.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
