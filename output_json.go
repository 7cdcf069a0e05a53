package borderize

import (
	"encoding/json"
	"io"

	"github.com/yacobolo/borderize/internal/borderize"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version string      `json:"version"`
	Summary JSONSummary `json:"summary"`
	Rules   []JSONRule  `json:"rules"`
}

// JSONSummary contains colour source counts
type JSONSummary struct {
	Labels        int `json:"labels"`
	PaletteColors int `json:"palette_colors"`
	RandomColors  int `json:"random_colors"`
	KeptColors    int `json:"kept_colors,omitempty"`
}

// JSONRule represents one label and its border
type JSONRule struct {
	Label       string `json:"label"`
	Selector    string `json:"selector"`
	Color       string `json:"color"`
	Random      bool   `json:"random"`
	Kept        bool   `json:"kept,omitempty"`
	Declaration string `json:"declaration"`
}

// WriteJSON writes the style map as JSON, rules sorted by label
func WriteJSON(w io.Writer, styles borderize.StyleMap) error {
	output := buildJSONOutput(styles)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a StyleMap to JSONOutput
func buildJSONOutput(styles borderize.StyleMap) JSONOutput {
	rules := styles.Rules()
	jsonRules := make([]JSONRule, len(rules))
	for i, r := range rules {
		jsonRules[i] = JSONRule{
			Label:       r.Label,
			Selector:    r.Selector,
			Color:       r.Declaration.Color,
			Random:      r.Declaration.Random,
			Kept:        r.Declaration.Kept,
			Declaration: r.Declaration.String(),
		}
	}

	fromPalette, random := styles.Counts()
	return JSONOutput{
		Version: "1.0",
		Summary: JSONSummary{
			Labels:        len(rules),
			PaletteColors: fromPalette,
			RandomColors:  random,
			KeptColors:    styles.KeptCount(),
		},
		Rules: jsonRules,
	}
}
