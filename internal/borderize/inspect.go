package borderize

import (
	"io"
	"strings"

	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// PrintTree writes the element trees under roots, one node per line, with
// the labels each element contributes. Element roots are printed themselves;
// a document root prints its children. Ignored elements are marked but their
// children are still shown.
func PrintTree(w io.Writer, title string, roots []*html.Node, e Extractor, useColors bool) error {
	tree := treeprint.NewWithRoot(RenderStyle(StyleCyan, title, useColors))
	for _, r := range roots {
		if r.Type == html.ElementNode {
			addChildren(tree.AddBranch(nodeText(r, e, useColors)), r, e, useColors)
		} else {
			addChildren(tree, r, e, useColors)
		}
	}
	_, err := io.WriteString(w, tree.String())
	return err
}

func addChildren(branch treeprint.Tree, n *html.Node, e Extractor, useColors bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		addChildren(branch.AddBranch(nodeText(c, e, useColors)), c, e, useColors)
	}
}

func nodeText(n *html.Node, e Extractor, useColors bool) string {
	labels := e.NodeLabels(n)
	if labels == nil {
		return n.Data + " " + RenderStyle(StyleYellow, "(ignored)", useColors)
	}
	if len(labels) == 1 {
		return labels[0]
	}
	return labels[0] + " " + RenderStyle(StyleGray, strings.Join(labels[1:], " "), useColors)
}
