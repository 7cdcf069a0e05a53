package markup

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// voidElements never have children, with or without a trailing slash.
var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Keygen: true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// buildLenient creates a tree straight from the token stream.
func buildLenient(r io.Reader) (*html.Node, error) {
	root := &html.Node{Type: html.DocumentNode}
	open := []*html.Node{root}

	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		parent := open[len(open)-1]

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("tokenize: %w", err)
			}
			return root, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			n := &html.Node{
				Type:     html.ElementNode,
				Data:     tok.Data,
				DataAtom: tok.DataAtom,
				Attr:     firstAttributes(tok.Attr),
			}
			parent.AppendChild(n)
			if tt == html.StartTagToken && !voidElements[tok.DataAtom] {
				open = append(open, n)
			}

		case html.EndTagToken:
			tok := z.Token()
			// Close the nearest matching element; unmatched end tags are dropped
			for i := len(open) - 1; i > 0; i-- {
				if open[i].Data == tok.Data {
					open = open[:i]
					break
				}
			}

		case html.TextToken:
			parent.AppendChild(&html.Node{Type: html.TextNode, Data: string(z.Text())})

		case html.CommentToken:
			parent.AppendChild(&html.Node{Type: html.CommentNode, Data: string(z.Text())})

		case html.DoctypeToken:
			parent.AppendChild(&html.Node{Type: html.DoctypeNode, Data: string(z.Text())})
		}
	}
}

// firstAttributes drops repeated attribute keys, keeping the first, the
// same way the HTML5 parser does.
func firstAttributes(attrs []html.Attribute) []html.Attribute {
	if len(attrs) < 2 {
		return attrs
	}
	seen := make(map[string]bool, len(attrs))
	out := attrs[:0:0]
	for _, a := range attrs {
		if seen[a.Key] {
			continue
		}
		seen[a.Key] = true
		out = append(out, a)
	}
	return out
}
