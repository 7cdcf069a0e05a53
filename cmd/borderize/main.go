// Package main provides the borderize CLI tool for generating debugging
// border stylesheets from HTML.
package main

import (
	"fmt"
	"os"

	core "github.com/yacobolo/borderize/internal/borderize"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		useColors := core.ShouldUseColors(false)
		fmt.Fprintln(os.Stderr, core.RenderStyle(core.StyleRed, "Error: "+err.Error(), useColors))
		os.Exit(1)
	}
}
