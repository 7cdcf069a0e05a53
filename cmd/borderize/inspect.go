package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/borderize"
	core "github.com/yacobolo/borderize/internal/borderize"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <filename.html>",
	Short: "Print the element tree with the labels each element contributes",
	Long: `Parse the input the same way generation does and print its element tree.
Ignored elements are marked; nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config := buildConfig(args[0])
		config.UseColors = core.ShouldUseColors(getBoolWithFallback("color", "color", false))
		return borderize.Inspect(cmd.OutOrStdout(), config)
	},
}

func init() {
	addInputFlags(inspectCmd.Flags())
	registerCompletions(inspectCmd)
}
