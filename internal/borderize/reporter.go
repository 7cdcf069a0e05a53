package borderize

import (
	"fmt"
	"io"
	"os"
)

// Reporter prints generation results to a terminal.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter writing to w.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: useColors,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Respect https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintRules lists every rule next to a swatch of its colour.
func (r *Reporter) PrintRules(m StyleMap) {
	for _, rule := range m.Rules() {
		marker := ""
		switch {
		case rule.Declaration.Kept:
			marker = RenderStyle(StyleGray, " (kept)", r.useColors)
		case rule.Declaration.Random:
			marker = RenderStyle(StyleGray, " (random)", r.useColors)
		}
		fmt.Fprintf(r.w, "%s %s%s\n", Swatch(rule.Declaration.Color, r.useColors), rule, marker)
	}
}

// PrintSummary outputs where the stylesheet went and how it was coloured.
func (r *Reporter) PrintSummary(result GenerateResult) {
	fmt.Fprintf(r.w, "%s %s\n",
		RenderStyle(StyleGreen, "Wrote", r.useColors),
		RenderStyle(StyleCyan, result.OutputPath, r.useColors))
	fmt.Fprintf(r.w, "  Files scanned: %d\n", result.FilesScanned)
	sources := fmt.Sprintf("(%d palette, %d random)", result.PaletteColors, result.RandomColors)
	if result.KeptColors > 0 {
		sources = fmt.Sprintf("(%d palette, %d random, %d kept)", result.PaletteColors, result.RandomColors, result.KeptColors)
	}
	fmt.Fprintf(r.w, "  Labels styled: %d %s\n", result.Labels, RenderStyle(StyleGray, sources, r.useColors))

	for _, w := range result.Warnings {
		fmt.Fprintf(r.w, "  %s %s\n", RenderStyle(StyleYellow, "Warning:", r.useColors), w)
	}

	if result.Labels == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: every element was ignored or filtered; check --only, --exclude and --ignore-tags", r.useColors))
	}
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
