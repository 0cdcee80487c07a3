package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	m "dotcov.dev/pkg/dotcov/internal/model"
)

// SourceFSAdapter abstracts the filesystem lookups needed to turn source file
// names found in reports into stable paths.
type SourceFSAdapter interface {
	// CanonicalPath returns the absolute, symlink-resolved form of name.
	// Relative names are taken relative to base, or to the working directory
	// when base is empty. Missing trailing components are kept as written.
	CanonicalPath(base m.Path, name string) (m.Path, error)

	// Exists reports whether a file or directory is present at path.
	Exists(path m.Path) (bool, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the parser.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// CanonicalPath resolves name to an absolute path free of symlinks and
// relative segments.
func (a *LocalSourceFSAdapter) CanonicalPath(base m.Path, name string) (m.Path, error) {
	if name == "" {
		return "", errors.New("empty source file name")
	}

	if !filepath.IsAbs(name) && base != "" {
		name = filepath.Join(string(base), name)
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return "", fmt.Errorf("absolute path of %s: %w", name, err)
	}

	resolved, err := resolveExisting(abs)
	if err != nil {
		return "", err
	}

	return m.Path(resolved), nil
}

// resolveExisting evaluates symlinks on the longest existing prefix of abs
// and appends the remaining components unchanged.
func resolveExisting(abs string) (string, error) {
	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("resolve %s: %w", abs, err)
	}

	parent := filepath.Dir(abs)
	if parent == abs {
		return abs, nil
	}

	resolvedParent, err := resolveExisting(parent)
	if err != nil {
		return "", err
	}

	return filepath.Join(resolvedParent, filepath.Base(abs)), nil
}

// Exists reports whether path is present.
func (a *LocalSourceFSAdapter) Exists(path m.Path) (bool, error) {
	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
