package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .borderize.yaml config file",
	Long:  `Create a .borderize.yaml configuration file in the current directory with the built-in defaults.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# borderize configuration
# Docs: https://github.com/yacobolo/borderize

verbose: false

# Where markup comes from and how it is parsed
input:
  src-dir: .
  encoding: utf-8          # any WHATWG encoding label
  parser: lenient          # lenient | html5
  scope: ""                # CSS selector; empty = whole document

# Where the stylesheet goes
output:
  dest-dir: .
  css-fname: borders.css   # "-" writes to stdout
  format: css              # css | json

# Which labels get a border
labels:
  no-attributes: false     # true = tag names only
  only: []
  exclude: []
  ignore-tags: [title, html, meta, script, br, hr, img, link, source, style, abbr, address, audio, base, bdi, bdo]

# Border colours; entries are used from the end of the list
colors:
  palette:
    - "#bb4430"
    - "#000000"
    - "#ff0000"
    - "#ff7700"
    - "#00ff1e"
    - "#0026ff"
    - "#f700ff"
    - "#ff0040"
    - "#c300ff"
    - "#00e5ff"
    - "#fbff00"
    - "#9d00ff"
  seed: 0                  # 0 = unseeded random fallback
  keep: false              # reuse colours from the existing output file
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
