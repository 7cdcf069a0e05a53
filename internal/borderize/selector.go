package borderize

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Selector returns the CSS selector text for label. A tag, class or id name
// that does not lex as a single CSS identifier is escaped, e.g. ".md:flex"
// becomes ".md\:flex" and "#1st" becomes "#\31 st".
func Selector(label string) string {
	if label == "" {
		return label
	}
	prefix, name := "", label
	if label[0] == '.' || label[0] == '#' {
		prefix, name = label[:1], label[1:]
	}
	if name == "" || isIdent(name) {
		return label
	}
	return prefix + escapeIdent(name)
}

// isIdent reports whether s lexes as exactly one identifier token.
func isIdent(s string) bool {
	lexer := css.NewLexer(parse.NewInputString(s))

	tt, text := lexer.Next()
	if tt != css.IdentToken && tt != css.CustomPropertyNameToken {
		return false
	}
	if string(text) != s {
		return false
	}
	tt, _ = lexer.Next()
	return tt == css.ErrorToken
}

// escapeIdent serializes s as a CSS identifier.
func escapeIdent(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		switch {
		case r == 0:
			b.WriteRune('�')
		case (r >= 0x01 && r <= 0x1F) || r == 0x7F,
			i == 0 && r >= '0' && r <= '9',
			i == 1 && r >= '0' && r <= '9' && runes[0] == '-':
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 0 && r == '-' && len(runes) == 1:
			b.WriteString(`\-`)
		case r >= 0x80, r == '-', r == '_',
			r >= '0' && r <= '9',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}
