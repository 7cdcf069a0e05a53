package borderize

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ReadColors scans a border stylesheet and returns the border colour of each
// rule keyed by its selector text. Rules without a hex border colour are
// skipped, so hand-edited or foreign stylesheets are read as far as possible.
func ReadColors(content string) map[string]string {
	lexer := css.NewLexer(parse.NewInputString(content))
	colors := make(map[string]string)

	var selector strings.Builder
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			// ErrorToken at EOF is normal
			return colors
		case css.CommentToken:
			continue
		case css.LeftBraceToken:
			sel := strings.TrimSpace(selector.String())
			selector.Reset()
			if color, ok := borderColor(readDeclarations(lexer)); ok && sel != "" {
				colors[sel] = color
			}
		default:
			selector.Write(text)
		}
	}
}

// readDeclarations reads property: value pairs until }
func readDeclarations(lexer *css.Lexer) map[string]string {
	props := make(map[string]string)

	var currentProp string
	var currentVal []string

	for {
		tt, text := lexer.Next()

		if tt == css.ErrorToken || tt == css.RightBraceToken {
			// Save last property
			if currentProp != "" && len(currentVal) > 0 {
				props[currentProp] = strings.TrimSpace(strings.Join(currentVal, ""))
			}
			return props
		}

		switch {
		case tt == css.IdentToken && currentProp == "":
			currentProp = strings.ToLower(string(text))
		case tt == css.ColonToken && currentProp != "":
			continue
		case tt == css.SemicolonToken:
			if currentProp != "" && len(currentVal) > 0 {
				props[currentProp] = strings.TrimSpace(strings.Join(currentVal, ""))
			}
			currentProp = ""
			currentVal = nil
		case currentProp != "":
			currentVal = append(currentVal, string(text))
		}
	}
}

// borderColor picks the hex colour out of a border shorthand or border-color.
// The colour is returned as written.
func borderColor(props map[string]string) (string, bool) {
	for _, prop := range []string{"border", "border-color"} {
		for _, field := range strings.Fields(props[prop]) {
			if !strings.HasPrefix(field, "#") {
				continue
			}
			if _, err := NormalizeColor(field); err == nil {
				return field, true
			}
		}
	}
	return "", false
}
