package borderize

import (
	"fmt"
	"math/rand/v2"
)

// Border line settings shared by every declaration.
const (
	BorderWidth = "3px"
	BorderStyle = "solid"
)

// Declaration is the border assigned to one label.
type Declaration struct {
	Width  string
	Style  string
	Color  string // "#rrggbb"
	Random bool   // Generated after the palette ran out
	Kept   bool   // Reused from a previous stylesheet
}

// String formats the declaration body, e.g. "border: 3px solid #ff0000;".
func (d Declaration) String() string {
	return fmt.Sprintf("border: %s %s %s;", d.Width, d.Style, d.Color)
}

// StyleMap maps labels to their declarations.
type StyleMap map[string]Declaration

// Labels returns the mapped labels, sorted.
func (m StyleMap) Labels() []string {
	s := make(LabelSet, len(m))
	for l := range m {
		s[l] = struct{}{}
	}
	return s.Sorted()
}

// Counts returns how many declarations came from the palette and how many
// were generated. Kept declarations count as neither.
func (m StyleMap) Counts() (palette, random int) {
	for _, d := range m {
		switch {
		case d.Kept:
		case d.Random:
			random++
		default:
			palette++
		}
	}
	return palette, random
}

// KeptCount returns how many declarations were reused from a previous stylesheet.
func (m StyleMap) KeptCount() int {
	n := 0
	for _, d := range m {
		if d.Kept {
			n++
		}
	}
	return n
}

// Assigner maps labels to colours.
type Assigner struct {
	Palette []string   // Colours popped from the end; nil means DefaultPalette
	Rand    *rand.Rand // Source for fallback colours; nil means an unseeded source

	// Keep maps selector text to a colour that must be reused, usually read
	// back from the previous stylesheet with ReadColors.
	Keep map[string]string
}

// NewSeededRand returns a deterministic generator for seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// AssignColors assigns colours with the default palette and an unseeded
// fallback generator.
func AssignColors(labels LabelSet) StyleMap {
	m, _ := Assigner{}.Assign(labels)
	return m
}

// Assign gives every label one declaration. Labels are taken in sorted
// order, so palette colours land on the same labels for the same set. The
// only error is an invalid palette.
func (a Assigner) Assign(labels LabelSet) (StyleMap, error) {
	colors := a.Palette
	if colors == nil {
		colors = DefaultPalette
	}
	palette, err := NewPalette(colors)
	if err != nil {
		return nil, err
	}

	rng := a.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	sorted := labels.Sorted()
	styles := make(StyleMap, len(labels))
	for _, label := range sorted {
		if color, ok := a.Keep[Selector(label)]; ok {
			styles[label] = Declaration{Width: BorderWidth, Style: BorderStyle, Color: color, Kept: true}
			palette.Remove(color)
		}
	}

	for _, label := range sorted {
		if _, done := styles[label]; done {
			continue
		}
		d := Declaration{Width: BorderWidth, Style: BorderStyle}
		if color, ok := palette.Pop(); ok {
			d.Color = color
		} else {
			d.Color = RandomColor(rng)
			d.Random = true
		}
		styles[label] = d
	}
	return styles, nil
}

// RandomColor draws three uniform bytes and formats them as "#RRGGBB".
func RandomColor(rng *rand.Rand) string {
	return fmt.Sprintf("#%02X%02X%02X", rng.IntN(256), rng.IntN(256), rng.IntN(256))
}
