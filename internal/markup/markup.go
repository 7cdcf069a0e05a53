// Package markup turns HTML text into a read-only element tree.
//
// Two tree builders are available. The lenient builder keeps the document
// exactly as written: no implied html/head/body elements are inserted,
// unclosed tags are closed at end of input and stray end tags are dropped.
// The html5 builder runs the full HTML5 tree construction algorithm from
// golang.org/x/net/html, which does insert implied elements.
package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Mode selects the tree builder.
type Mode string

const (
	// ModeLenient builds the tree from the token stream as written.
	ModeLenient Mode = "lenient"
	// ModeHTML5 builds the tree with the HTML5 parsing algorithm.
	ModeHTML5 Mode = "html5"
)

// DefaultEncoding is used when Options.Encoding is empty.
const DefaultEncoding = "utf-8"

// ErrUnknownMode is returned for a Mode other than lenient or html5.
var ErrUnknownMode = errors.New("unknown parser mode")

// ErrUnknownEncoding is returned when the encoding label is not recognised.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Options configures Parse.
type Options struct {
	Mode     Mode   // "lenient" (default) or "html5"
	Encoding string // WHATWG encoding label, e.g. "utf-8", "windows-1252"
}

// Document is a parsed markup tree. It is never modified after Parse returns.
type Document struct {
	root *html.Node
}

// ParseMode converts a config string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeLenient:
		return ModeLenient, nil
	case ModeHTML5:
		return ModeHTML5, nil
	}
	return "", fmt.Errorf("%w %q (want lenient or html5)", ErrUnknownMode, s)
}

// ValidateEncoding reports whether label names a known encoding.
// A blank label means DefaultEncoding.
func ValidateEncoding(label string) error {
	if strings.TrimSpace(label) == "" {
		return nil
	}
	if enc, _ := charset.Lookup(label); enc == nil {
		return fmt.Errorf("%w %q", ErrUnknownEncoding, label)
	}
	return nil
}

// Parse reads markup from r, decoding it with opts.Encoding.
func Parse(r io.Reader, opts Options) (*Document, error) {
	mode, err := ParseMode(string(opts.Mode))
	if err != nil {
		return nil, err
	}

	label := opts.Encoding
	if label == "" {
		label = DefaultEncoding
	}
	decoded, err := charset.NewReaderLabel(label, r)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownEncoding, label)
	}

	var root *html.Node
	switch mode {
	case ModeHTML5:
		root, err = html.Parse(decoded)
	default:
		root, err = buildLenient(decoded)
	}
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// ParseString parses UTF-8 markup with the lenient builder.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s), Options{Mode: ModeLenient})
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Elements returns every element node in pre-order.
func (d *Document) Elements() []*html.Node {
	return Elements(d.root)
}

// Elements flattens the subtree rooted at n (n included) into its element
// nodes, in pre-order. The walk uses an explicit stack.
func Elements(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}

	var out []*html.Node
	stack := []*html.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.Type == html.ElementNode {
			out = append(out, cur)
		}

		// Push children in reverse so the first child is visited first
		for c := cur.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
	return out
}

// ValidateSelector reports whether selector compiles. Blank selectors are valid.
func ValidateSelector(selector string) error {
	if strings.TrimSpace(selector) == "" {
		return nil
	}
	if _, err := cascadia.Compile(selector); err != nil {
		return fmt.Errorf("scope selector %q: %w", selector, err)
	}
	return nil
}

// ScopeRoots returns the outermost elements matching selector, in document
// order. A blank selector returns the document node itself.
func (d *Document) ScopeRoots(selector string) ([]*html.Node, error) {
	if strings.TrimSpace(selector) == "" {
		return []*html.Node{d.root}, nil
	}

	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("scope selector %q: %w", selector, err)
	}

	matches := goquery.NewDocumentFromNode(d.root).FindMatcher(matcher).Nodes
	matched := make(map[*html.Node]bool, len(matches))
	for _, n := range matches {
		matched[n] = true
	}

	var roots []*html.Node
	for _, n := range matches {
		if !hasMatchedAncestor(n, matched) {
			roots = append(roots, n)
		}
	}
	return roots, nil
}

func hasMatchedAncestor(n *html.Node, matched map[*html.Node]bool) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if matched[p] {
			return true
		}
	}
	return false
}

// Select returns the element nodes of every subtree whose root matches
// selector. Nested matches are reported once. A blank selector selects the
// whole document.
func (d *Document) Select(selector string) ([]*html.Node, error) {
	roots, err := d.ScopeRoots(selector)
	if err != nil {
		return nil, err
	}

	var out []*html.Node
	for _, r := range roots {
		out = append(out, Elements(r)...)
	}
	return out, nil
}
