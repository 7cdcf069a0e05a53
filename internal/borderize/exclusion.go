package borderize

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DefaultIgnoredTags lists elements that never get a border: document
// metadata, script and style containers, void elements and a handful of
// inline text elements.
var DefaultIgnoredTags = []string{
	"title", "html", "meta", "script", "br", "hr",
	"img", "link", "source", "style", "abbr", "address",
	"audio", "base", "bdi", "bdo",
}

// genericContainers may never be ignored.
var genericContainers = map[string]bool{
	"div":  true,
	"span": true,
}

// ErrGenericContainer is returned when an ignore list names a generic container.
var ErrGenericContainer = errors.New("generic container cannot be ignored")

// ExclusionSet holds tag names whose elements receive no label.
// The zero value excludes nothing.
type ExclusionSet struct {
	tags map[string]struct{}
}

// NewExclusionSet builds an ExclusionSet from tags. Matching is
// case-insensitive. Blank entries are skipped.
func NewExclusionSet(tags ...string) (ExclusionSet, error) {
	set := ExclusionSet{tags: make(map[string]struct{}, len(tags))}
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if genericContainers[tag] {
			return ExclusionSet{}, fmt.Errorf("%w: %q", ErrGenericContainer, tag)
		}
		set.tags[tag] = struct{}{}
	}
	return set, nil
}

// DefaultExclusionSet returns the set built from DefaultIgnoredTags.
func DefaultExclusionSet() ExclusionSet {
	set, _ := NewExclusionSet(DefaultIgnoredTags...)
	return set
}

// Contains reports whether tag is excluded.
func (s ExclusionSet) Contains(tag string) bool {
	_, ok := s.tags[strings.ToLower(tag)]
	return ok
}

// Tags returns the excluded tag names, sorted.
func (s ExclusionSet) Tags() []string {
	out := make([]string, 0, len(s.tags))
	for tag := range s.tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
