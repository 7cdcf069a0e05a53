package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// TagName returns the lower-case tag name of an element node.
func TagName(n *html.Node) string {
	return strings.ToLower(n.Data)
}

// Attr returns the value of the first attribute named key.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// Classes splits the class attribute on whitespace. Missing or blank
// attributes give nil.
func Classes(n *html.Node) []string {
	v, ok := Attr(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

// ID returns the trimmed id attribute, or "" when absent or blank.
func ID(n *html.Node) string {
	v, _ := Attr(n, "id")
	return strings.TrimSpace(v)
}
