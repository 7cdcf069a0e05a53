package borderize

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette holds the hand-picked border colours. Entries are popped
// from the end, so the last ones are the most distinctive.
var DefaultPalette = []string{
	"#bb4430", "#000000", "#ff0000", "#ff7700",
	"#00ff1e", "#0026ff", "#f700ff", "#ff0040",
	"#c300ff", "#00e5ff", "#fbff00", "#9d00ff",
}

// Palette is a stack of unused colours.
type Palette struct {
	colors []string
}

// NewPalette copies colors into a new stack. Every entry must be a hex
// colour ("#rgb" or "#rrggbb"); entries are normalised to lower-case
// "#rrggbb" and repeats are dropped, keeping the first occurrence.
func NewPalette(colors []string) (*Palette, error) {
	seen := make(map[string]bool, len(colors))
	p := &Palette{colors: make([]string, 0, len(colors))}
	for _, raw := range colors {
		hex, err := NormalizeColor(raw)
		if err != nil {
			return nil, err
		}
		if seen[hex] {
			continue
		}
		seen[hex] = true
		p.colors = append(p.colors, hex)
	}
	return p, nil
}

// NormalizeColor parses a hex colour and returns it as lower-case "#rrggbb".
func NormalizeColor(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return "", fmt.Errorf("palette colour %q: want #rgb or #rrggbb", raw)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("palette colour %q: %w", raw, err)
	}
	return c.Hex(), nil
}

// Pop removes and returns the last colour.
func (p *Palette) Pop() (string, bool) {
	if len(p.colors) == 0 {
		return "", false
	}
	last := len(p.colors) - 1
	color := p.colors[last]
	p.colors = p.colors[:last]
	return color, true
}

// Remove drops color from the stack if present. Invalid colours are ignored.
func (p *Palette) Remove(color string) {
	hex, err := NormalizeColor(color)
	if err != nil {
		return
	}
	for i, c := range p.colors {
		if c == hex {
			p.colors = append(p.colors[:i], p.colors[i+1:]...)
			return
		}
	}
}

// Len returns the number of unused colours.
func (p *Palette) Len() int {
	return len(p.colors)
}
