package borderize

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestIsGlob(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"index.html", false},
		{"pages/about.html", false},
		{"*.html", true},
		{"pages/**/*.html", true},
		{"page?.html", true},
		{"[ab].html", true},
		{"{index,about}.html", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, isGlob(tt.input))
		})
	}
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"index.html":           "<p></p>",
		"pages/about.html":     "<p></p>",
		"pages/blog/post.html": "<p></p>",
		"pages/notes.txt":      "",
		"pages/old.html/keep":  "",
	})

	tests := []struct {
		name      string
		input     string
		wantFiles []string
	}{
		{
			name:      "plain file",
			input:     "index.html",
			wantFiles: []string{"index.html"},
		},
		{
			name:      "single level glob",
			input:     "pages/*.html",
			wantFiles: []string{"pages/about.html"},
		},
		{
			name:      "recursive glob",
			input:     "**/*.html",
			wantFiles: []string{"index.html", "pages/about.html", "pages/blog/post.html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, stats, err := expandInputs(dir, tt.input)
			require.NoError(t, err)

			want := make([]string, len(tt.wantFiles))
			for i, f := range tt.wantFiles {
				want[i] = filepath.Join(dir, f)
			}
			assert.ElementsMatch(t, want, files)
			assert.Equal(t, len(want), stats.FilesScanned)
			assert.Zero(t, stats.FilesSkipped)
		})
	}
}

func TestExpandInputsAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"index.html": "<p></p>"})
	abs := filepath.Join(dir, "index.html")

	files, _, err := expandInputs("/somewhere/else", abs)
	require.NoError(t, err)
	assert.Equal(t, []string{abs}, files)
}

func TestExpandInputsMissing(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"pages/notes.txt": ""})

	tests := []struct {
		name  string
		input string
	}{
		{name: "missing file", input: "index.html"},
		{name: "directory is not a file", input: "pages"},
		{name: "glob without matches", input: "**/*.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := expandInputs(dir, tt.input)
			require.Error(t, err)

			var missing *MissingPathError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, KindInput, missing.Kind)
			assert.True(t, errors.Is(err, fs.ErrNotExist))
		})
	}
}

func TestExpandInputsBadPattern(t *testing.T) {
	_, _, err := expandInputs(t.TempDir(), "[*.html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "glob pattern")
}

func TestExpandInputsSkipsGitIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		".gitignore":           "build/\n*.tmp.html\n",
		"build/gen.html":       "<article></article>",
		"pages/a.html":         "<section></section>",
		"pages/draft.tmp.html": "<aside></aside>",
	})

	files, stats, err := expandInputs(dir, "**/*.html")
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "pages/a.html")}, files)
	assert.Equal(t, 3, stats.FilesDiscovered)
	assert.Equal(t, 1, stats.FilesScanned)
	assert.Equal(t, 2, stats.FilesSkipped)
}

func TestExpandInputsLiteralFileIgnoresGitIgnore(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		".gitignore":     "build/\n",
		"build/gen.html": "<article></article>",
	})

	files, _, err := expandInputs(dir, "build/gen.html")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "build/gen.html")}, files)
}

func TestShouldSkipFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{".gitignore": "build/\n"})
	gi := loadGitIgnore(dir)
	require.NotNil(t, gi)

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "ignored directory", path: filepath.Join(dir, "build", "gen.html"), expected: true},
		{name: "nested ignored directory", path: filepath.Join(dir, "site", "build", "x.html"), expected: true},
		{name: "tracked file", path: filepath.Join(dir, "pages", "a.html"), expected: false},
		{name: "outside the root", path: filepath.Join(filepath.Dir(dir), "build", "gen.html"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, gi.shouldSkipFile(tt.path))
		})
	}

	var none *gitIgnore
	assert.False(t, none.shouldSkipFile(filepath.Join(dir, "build", "gen.html")))
}
