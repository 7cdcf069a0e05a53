// Package borderize turns a markup tree into border declarations.
//
// Extraction collects selector labels from the element tree: bare tag names,
// ".class" and "#id". Assignment maps each label to a border declaration,
// taking colours from a fixed high-contrast palette first and generating
// random ones once the palette runs out.
package borderize

import (
	"sort"

	"github.com/yacobolo/borderize/internal/markup"
	"golang.org/x/net/html"
)

// LabelSet is a set of selector labels: "tag", ".class" or "#id".
type LabelSet map[string]struct{}

// NewLabelSet returns a set holding labels.
func NewLabelSet(labels ...string) LabelSet {
	s := make(LabelSet, len(labels))
	for _, l := range labels {
		s.Add(l)
	}
	return s
}

// Add inserts label. Empty labels are ignored.
func (s LabelSet) Add(label string) {
	if label != "" {
		s[label] = struct{}{}
	}
}

// Has reports whether label is in the set.
func (s LabelSet) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// Merge adds every label of other.
func (s LabelSet) Merge(other LabelSet) {
	for l := range other {
		s[l] = struct{}{}
	}
}

// Sorted returns the labels in lexicographic order.
func (s LabelSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Extractor collects labels from element nodes.
type Extractor struct {
	Exclusions        ExclusionSet // Tags that contribute nothing
	IncludeAttributes bool         // Add ".class" and "#id" labels
}

// Extract visits every element of doc.
func (e Extractor) Extract(doc *markup.Document) LabelSet {
	return e.ExtractNodes(doc.Elements())
}

// ExtractNodes collects labels from nodes. Excluded nodes are skipped
// individually; their descendants are still expected in nodes.
func (e Extractor) ExtractNodes(nodes []*html.Node) LabelSet {
	labels := make(LabelSet)
	for _, n := range nodes {
		for _, l := range e.NodeLabels(n) {
			labels.Add(l)
		}
	}
	return labels
}

// NodeLabels returns the labels a single element contributes, or nil when
// its tag is excluded.
func (e Extractor) NodeLabels(n *html.Node) []string {
	if n.Type != html.ElementNode {
		return nil
	}
	tag := markup.TagName(n)
	if tag == "" || e.Exclusions.Contains(tag) {
		return nil
	}

	labels := []string{tag}
	if !e.IncludeAttributes {
		return labels
	}
	for _, class := range markup.Classes(n) {
		labels = append(labels, "."+class)
	}
	if id := markup.ID(n); id != "" {
		labels = append(labels, "#"+id)
	}
	return labels
}

// LabelFilter narrows an extracted set. Exclude wins over Only.
type LabelFilter struct {
	Only    []string // Keep only these labels when non-empty
	Exclude []string // Drop these labels
}

// Apply returns a filtered copy of labels.
func (f LabelFilter) Apply(labels LabelSet) LabelSet {
	only := NewLabelSet(f.Only...)
	exclude := NewLabelSet(f.Exclude...)

	out := make(LabelSet, len(labels))
	for l := range labels {
		if exclude.Has(l) {
			continue
		}
		if len(only) > 0 && !only.Has(l) {
			continue
		}
		out[l] = struct{}{}
	}
	return out
}
