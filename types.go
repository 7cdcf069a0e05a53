package borderize

import (
	"fmt"
	"io"
	"os"

	"github.com/yacobolo/borderize/internal/borderize"
)

// DefaultOutputName is the stylesheet file name used when Config.OutputName is empty.
const DefaultOutputName = "borders.css"

// StdoutName as Config.OutputName writes the stylesheet to Config.Stdout.
const StdoutName = "-"

// Config holds generator configuration
type Config struct {
	SourceDir    string    // Directory inputs are resolved against (default: working directory)
	DestDir      string    // Directory the stylesheet is written to (default: working directory)
	Input        string    // "index.html" or a glob such as "pages/**/*.html"
	OutputName   string    // "borders.css"; "-" writes to Stdout
	NoAttributes bool      // Tag names only, no ".class" / "#id" labels
	Only         []string  // Keep only these labels when non-empty
	Exclude      []string  // Drop these labels
	IgnoreTags   []string  // Tags that never get a border (nil: borderize.DefaultIgnoredTags)
	Scope        string    // CSS selector restricting extraction to matching subtrees
	Parser       string    // "lenient" (default) or "html5"
	Encoding     string    // Input character encoding (default: "utf-8")
	Format       string    // "css" (default) or "json"
	Palette      []string  // Colours used before random ones (nil: borderize.DefaultPalette)
	Seed         uint64    // Non-zero makes the random fallback reproducible
	KeepColors   bool      // Reuse colours from an existing output file
	Verbose      bool      // Print progress and every rule
	UseColors    bool      // Colour terminal output
	Stdout       io.Writer // "-" destination (default: os.Stdout)
	Log          io.Writer // Verbose progress output (default: Stdout)
}

// GenerateResult contains generation stats
type GenerateResult = borderize.GenerateResult

// defaults fills unset fields. Relative directories stay relative.
func (c *Config) defaults() error {
	if c.SourceDir == "" || c.DestDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("working directory: %w", err)
		}
		if c.SourceDir == "" {
			c.SourceDir = wd
		}
		if c.DestDir == "" {
			c.DestDir = wd
		}
	}
	if c.OutputName == "" {
		c.OutputName = DefaultOutputName
	}
	if c.IgnoreTags == nil {
		c.IgnoreTags = borderize.DefaultIgnoredTags
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Log == nil {
		c.Log = c.Stdout
	}
	return nil
}

func (c *Config) verbosef(format string, args ...any) {
	if c.Verbose {
		fmt.Fprintf(c.Log, format, args...)
	}
}
