// Package main is an offline command-line front end for posture assessment.
// It reads an asset inventory from a file or stdin and prints reports and graphs.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
