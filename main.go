// The main package for the corpgraph executable.
package main

import (
	"github.com/corpgraph/corpgraph/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
