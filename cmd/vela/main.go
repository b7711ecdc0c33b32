// Command vela drives the tree-walking IR evaluator from the command
// line: reading a small textual IR notation (package irtext), running it
// through the interpreter, and printing the result.
package main

import (
	"fmt"
	"os"

	"github.com/vela-lang/vela/cmd/vela/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
