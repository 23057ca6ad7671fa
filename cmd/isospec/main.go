// Command isospec is the CLI entry point: it wires cli.Execute and
// translates a returned error into a process exit code.
package main

import (
	"fmt"
	"os"

	"github.com/gopherchem/isospec/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
