package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteHTMLFiles(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantValues    []string
		wantDirective cobra.ShellCompDirective
	}{
		{
			name:          "first argument filters markup files",
			wantValues:    []string{"html", "htm", "xhtml"},
			wantDirective: cobra.ShellCompDirectiveFilterFileExt,
		},
		{
			name:          "no second argument",
			args:          []string{"index.html"},
			wantDirective: cobra.ShellCompDirectiveNoFileComp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, directive := completeHTMLFiles(rootCmd, tt.args, "")
			assert.Equal(t, tt.wantValues, values)
			assert.Equal(t, tt.wantDirective, directive)
		})
	}
}

func TestFlagCompletion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "parser", args: []string{"__complete", "--parser", ""}, want: []string{"lenient", "html5"}},
		{name: "format", args: []string{"__complete", "--format", ""}, want: []string{"css", "json"}},
		{name: "inspect parser", args: []string{"__complete", "inspect", "--parser", ""}, want: []string{"lenient", "html5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := rootCmd
			cmd.SetOut(&out)
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())

			// Values come first, the directive line last
			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			require.NotEmpty(t, lines)
			assert.Equal(t, tt.want, lines[:len(lines)-1])
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var out bytes.Buffer
			cmd := rootCmd
			cmd.SetOut(&out)
			cmd.SetArgs([]string{"completion", shell})
			require.NoError(t, cmd.Execute())
			assert.Contains(t, out.String(), "borderize")
		})
	}
}
