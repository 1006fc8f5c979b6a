// Command snipper collects tagged snippets of code from source files
// into separate files for simple inclusion in LaTeX documents.
package main

import (
	"os"

	"github.com/custodia-labs/snipper-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
