// Package main provides the debugtools CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/willibrandon/debugtools/cmd/debugtools/commands"
)

var version = "dev"

func main() {
	if err := commands.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
