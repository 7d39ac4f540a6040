package target

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// FileSystem is the filesystem capability the resolver needs.
type FileSystem interface {
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)
	// Exists reports whether path exists.
	Exists(path string) (bool, error)
	// Match returns the regular files directly inside dir whose base name
	// matches pattern, as full paths sorted by name.
	Match(dir, pattern string) ([]string, error)
}

// AferoFS implements FileSystem on top of an afero.Fs.
type AferoFS struct {
	fs afero.Fs
}

// NewAferoFS wraps fs.
func NewAferoFS(fs afero.Fs) *AferoFS {
	return &AferoFS{fs: fs}
}

// NewOSFileSystem returns a FileSystem backed by the real disk.
func NewOSFileSystem() *AferoFS {
	return NewAferoFS(afero.NewOsFs())
}

// IsDir reports whether path is an existing directory.
func (a *AferoFS) IsDir(path string) (bool, error) {
	return afero.DirExists(a.fs, path)
}

// Exists reports whether path exists.
func (a *AferoFS) Exists(path string) (bool, error) {
	return afero.Exists(a.fs, path)
}

// Match lists regular files directly inside dir matching pattern.
func (a *AferoFS) Match(dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	entries, err := afero.ReadDir(a.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var matches []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := doublestar.Match(pattern, e.Name())
		if err != nil {
			return nil, fmt.Errorf("matching %q against %s: %w", pattern, e.Name(), err)
		}
		if ok {
			matches = append(matches, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(matches)
	return matches, nil
}
