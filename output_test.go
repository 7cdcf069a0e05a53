package borderize

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/borderize/internal/borderize"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		expected   OutputFormat
		wantErr    bool
	}{
		{name: "default format is css", formatFlag: "", expected: OutputCSS},
		{name: "explicit css format", formatFlag: "css", expected: OutputCSS},
		{name: "explicit json format", formatFlag: "json", expected: OutputJSON},
		{name: "case and spaces ignored", formatFlag: " JSON ", expected: OutputJSON},
		{name: "unknown format", formatFlag: "markdown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetermineOutputFormat(tt.formatFlag)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWriteOutput(t *testing.T) {
	styles := borderize.StyleMap{
		"p":     {Width: "3px", Style: "solid", Color: "#ff0000"},
		".lead": {Width: "3px", Style: "solid", Color: "#A1B2C3", Random: true},
	}

	t.Run("css", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteOutput(&buf, styles, OutputCSS))
		assert.Equal(t,
			".lead { border: 3px solid #A1B2C3; }\np { border: 3px solid #ff0000; }\n",
			buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteOutput(&buf, styles, OutputJSON))

		var got JSONOutput
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "1.0", got.Version)
		assert.Equal(t, JSONSummary{Labels: 2, PaletteColors: 1, RandomColors: 1}, got.Summary)
		assert.Equal(t, JSONRule{
			Label:       ".lead",
			Selector:    ".lead",
			Color:       "#A1B2C3",
			Random:      true,
			Declaration: "border: 3px solid #A1B2C3;",
		}, got.Rules[0])
	})
}
