// Command pavsca applies ordered sound change rules to a word list.
//
// Usage:
//
//	pavsca apply rules.txt words.txt out.txt
//	pavsca apply --db trace.db --scan recompute rules.txt words.txt out.txt
//	pavsca compile rules.txt
//	pavsca test ./scenarios
//	pavsca trace --db trace.db --run <id>
//	pavsca config show
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/pavsca/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// Commands report their own ExitErrors; anything else is a usage error.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}
	os.Exit(exitErr.Code)
}
