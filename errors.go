package borderize

import (
	"fmt"
	"io/fs"
	"os"
)

// Path kinds reported by MissingPathError
const (
	KindSourceDir = "source directory"
	KindDestDir   = "destination directory"
	KindInput     = "input file"
)

// MissingPathError reports a required directory or input file that does
// not exist. It matches fs.ErrNotExist with errors.Is.
type MissingPathError struct {
	Kind string // KindSourceDir, KindDestDir or KindInput
	Path string
}

func (e *MissingPathError) Error() string {
	return fmt.Sprintf("%s %s does not exist", e.Kind, e.Path)
}

func (e *MissingPathError) Unwrap() error {
	return fs.ErrNotExist
}

// requireDir fails unless path is an existing directory.
func requireDir(kind, path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return &MissingPathError{Kind: kind, Path: path}
	}
	return nil
}

// requireFile fails unless path is an existing regular file.
func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return &MissingPathError{Kind: KindInput, Path: path}
	}
	return nil
}
