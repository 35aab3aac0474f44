// Package main is the entry point for apstudio.
package main

import (
	"fmt"
	"os"

	"github.com/apstudio/apstudio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
