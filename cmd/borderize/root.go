package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/borderize"
	core "github.com/yacobolo/borderize/internal/borderize"
)

var rootCmd = &cobra.Command{
	Use:   "borderize <filename.html>",
	Short: "Generate a stylesheet that outlines every element of an HTML page",
	Long: `Parse an HTML file and write a CSS file with one coloured border rule per
distinct tag name, class and id. Link the stylesheet from the page to see
its layout structure.

The filename may be a glob ("pages/**/*.html"); labels from every match are
merged into one stylesheet.`,
	Example: `  borderize index.html
  borderize -s site -d site/css -o debug.css index.html
  borderize --no-attributes -o - index.html`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Print progress and every generated rule")
	pf.Bool("quiet", false, "Suppress all output except errors")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigFile, "Config file path")

	f := rootCmd.Flags()
	addInputFlags(f)
	f.StringP("css-fname", "o", borderize.DefaultOutputName, `Output file name ("-" for stdout)`)
	f.StringP("dest-dir", "d", "", "Directory the stylesheet is written to (default: working directory)")
	f.String("format", "css", "Output format: css|json")
	f.StringSlice("only", nil, "Keep only these labels")
	f.StringSlice("exclude", nil, "Drop these labels")
	f.StringSlice("palette", nil, "Colours used before random ones (#rgb or #rrggbb)")
	f.Uint64("seed", 0, "Seed for the random fallback colours (0 = unseeded)")
	f.Bool("keep-colors", false, "Reuse colours from the existing output file")

	registerCompletions(rootCmd)

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// addInputFlags registers the flags shared by generation and inspection.
func addInputFlags(f *pflag.FlagSet) {
	f.StringP("src-dir", "s", "", "Directory the filename is resolved against (default: working directory)")
	f.BoolP("no-attributes", "n", false, "Use tag names only, without .class and #id labels")
	f.StringSlice("ignore-tags", nil, "Tags that never get a border (replaces the default list)")
	f.String("scope", "", "CSS selector restricting extraction to matching elements")
	f.String("parser", "lenient", "Parser mode: lenient|html5")
	f.String("encoding", "utf-8", "Input character encoding")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	config := buildConfig(args[0])
	quiet := getBoolWithFallback("quiet", "quiet", false)
	useColors := core.ShouldUseColors(getBoolWithFallback("color", "color", false))

	// Keep the stylesheet alone on stdout when it is written there
	out := cmd.OutOrStdout()
	if config.OutputName == borderize.StdoutName {
		out = cmd.ErrOrStderr()
	}
	config.Stdout = cmd.OutOrStdout()
	config.Log = out
	config.UseColors = useColors
	if quiet {
		config.Verbose = false
	}

	result, err := borderize.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if quiet {
		return nil
	}

	reporter := core.NewReporter(out, useColors)
	if config.Verbose {
		reporter.PrintRules(result.Styles)
	}
	reporter.PrintSummary(*result)
	return nil
}
