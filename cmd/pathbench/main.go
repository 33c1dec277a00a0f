// Command pathbench generates random weighted graphs and times shortest-path
// solvers on them, writing one CSV row per (topology, vertex count, solver).
//
// Usage:
//
//	pathbench [flags] <output.csv>
//	pathbench defaults > pathbench.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pathbench:", err)
		os.Exit(1)
	}
}
