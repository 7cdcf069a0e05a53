package borderize

import (
	"fmt"
	"io"

	"github.com/yacobolo/borderize/internal/borderize"
)

// Inspect prints the element tree of every input, marking ignored tags and
// listing the labels each element contributes. Nothing is written to disk.
func Inspect(w io.Writer, config Config) error {
	if err := config.defaults(); err != nil {
		return err
	}
	s, err := newSettings(config)
	if err != nil {
		return err
	}
	if err := requireDir(KindSourceDir, config.SourceDir); err != nil {
		return err
	}

	files, _, err := expandInputs(config.SourceDir, config.Input)
	if err != nil {
		return err
	}

	for i, file := range files {
		doc, err := s.parseFile(file)
		if err != nil {
			return err
		}
		roots, err := doc.ScopeRoots(s.scope)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := borderize.PrintTree(w, file, roots, s.extractor, config.UseColors); err != nil {
			return fmt.Errorf("print %s: %w", file, err)
		}
	}
	return nil
}
