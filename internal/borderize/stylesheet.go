package borderize

import (
	"bufio"
	"fmt"
	"io"
)

// Rule is one serialized stylesheet line.
type Rule struct {
	Label       string
	Selector    string
	Declaration Declaration
}

// String formats the rule as "<selector> { border: 3px solid <color>; }".
func (r Rule) String() string {
	return fmt.Sprintf("%s { %s }", r.Selector, r.Declaration)
}

// Rules returns the rules of m sorted by label.
func (m StyleMap) Rules() []Rule {
	labels := m.Labels()
	rules := make([]Rule, 0, len(labels))
	for _, l := range labels {
		rules = append(rules, Rule{
			Label:       l,
			Selector:    Selector(l),
			Declaration: m[l],
		})
	}
	return rules
}

// Lines returns the stylesheet lines, sorted by label.
func (m StyleMap) Lines() []string {
	rules := m.Rules()
	lines := make([]string, len(rules))
	for i, r := range rules {
		lines[i] = r.String()
	}
	return lines
}

// WriteCSS writes one rule per line.
func WriteCSS(w io.Writer, m StyleMap) error {
	bw := bufio.NewWriter(w)
	for _, line := range m.Lines() {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
