package borderize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks input discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by the glob pattern
	FilesScanned    int // Files actually parsed (after filtering)
	FilesSkipped    int // Files skipped because they are gitignored
}

// gitIgnore is a compiled .gitignore and the directory it applies to.
type gitIgnore struct {
	root    string
	matcher *ignore.GitIgnore
}

var (
	// gitignore caching, keyed by absolute directory
	gitIgnoreCache   = make(map[string]*gitIgnore)
	gitIgnoreCacheMu sync.Mutex
)

// isGlob reports whether the input names a pattern rather than one file
func isGlob(input string) bool {
	return strings.ContainsAny(input, "*?[{")
}

// loadGitIgnore loads dir/.gitignore once per directory (thread-safe).
// Gracefully degrades to nil if the file doesn't exist.
func loadGitIgnore(dir string) *gitIgnore {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil
	}

	gitIgnoreCacheMu.Lock()
	defer gitIgnoreCacheMu.Unlock()
	if gi, ok := gitIgnoreCache[abs]; ok {
		return gi
	}

	var gi *gitIgnore
	if matcher, err := ignore.CompileIgnoreFile(filepath.Join(abs, ".gitignore")); err == nil {
		gi = &gitIgnore{root: abs, matcher: matcher}
	}
	gitIgnoreCache[abs] = gi
	return gi
}

// findGitIgnore returns the .gitignore of the source directory, falling back
// to the one in the working directory.
func findGitIgnore(sourceDir string) *gitIgnore {
	if gi := loadGitIgnore(sourceDir); gi != nil {
		return gi
	}
	if wd, err := os.Getwd(); err == nil {
		return loadGitIgnore(wd)
	}
	return nil
}

// shouldSkipFile reports whether a globbed file is gitignored. The path is
// matched relative to the directory holding the .gitignore; files outside
// that directory are never skipped.
func (gi *gitIgnore) shouldSkipFile(path string) bool {
	if gi == nil {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(gi.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return gi.matcher.MatchesPath(filepath.ToSlash(rel))
}

// expandInputs resolves the input against sourceDir. A plain file name must
// exist; a glob must match at least one file.
func expandInputs(sourceDir, input string) ([]string, ScanStats, error) {
	stats := ScanStats{}
	full := filepath.Join(sourceDir, input)
	if filepath.IsAbs(input) {
		full = input
	}

	if !isGlob(input) {
		if err := requireFile(full); err != nil {
			return nil, stats, err
		}
		stats.FilesDiscovered, stats.FilesScanned = 1, 1
		return []string{full}, stats, nil
	}

	// Use doublestar for ** glob support
	matches, err := doublestar.FilepathGlob(full)
	if err != nil {
		return nil, stats, fmt.Errorf("glob pattern %q: %w", input, err)
	}

	gi := findGitIgnore(sourceDir)
	var files []string
	seen := make(map[string]bool)
	for _, match := range matches {
		if seen[match] {
			continue
		}
		seen[match] = true

		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		stats.FilesDiscovered++

		if gi.shouldSkipFile(match) {
			stats.FilesSkipped++
			continue
		}
		files = append(files, match)
		stats.FilesScanned++
	}

	if len(files) == 0 {
		return nil, stats, &MissingPathError{Kind: KindInput, Path: full}
	}
	return files, stats, nil
}
