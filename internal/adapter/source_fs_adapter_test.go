package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "dotcov.dev/pkg/dotcov/internal/model"
)

func TestLocalSourceFSAdapter_CanonicalPath(t *testing.T) {
	t.Run("absolute existing file", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := realTempDir(t)
		file := filepath.Join(root, "a.cs")
		writeTestFile(t, file, "class A {}\n")

		got, err := adapter.CanonicalPath("", file)
		if err != nil {
			t.Fatalf("CanonicalPath() error = %v", err)
		}

		if got != m.Path(file) {
			t.Fatalf("CanonicalPath() = %s, want %s", got, file)
		}
	})

	t.Run("relative name resolved against base", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := realTempDir(t)
		mustMkdir(t, filepath.Join(root, "src"))
		writeTestFile(t, filepath.Join(root, "src", "a.cs"), "class A {}\n")

		got, err := adapter.CanonicalPath(m.Path(root), "src/../src/./a.cs")
		if err != nil {
			t.Fatalf("CanonicalPath() error = %v", err)
		}

		if want := m.Path(filepath.Join(root, "src", "a.cs")); got != want {
			t.Fatalf("CanonicalPath() = %s, want %s", got, want)
		}
	})

	t.Run("relative name resolved against working directory", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := realTempDir(t)
		t.Chdir(root)

		got, err := adapter.CanonicalPath("", "a.cs")
		if err != nil {
			t.Fatalf("CanonicalPath() error = %v", err)
		}

		if want := m.Path(filepath.Join(root, "a.cs")); got != want {
			t.Fatalf("CanonicalPath() = %s, want %s", got, want)
		}
	})

	t.Run("symlinks are resolved", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := realTempDir(t)
		target := filepath.Join(root, "real")
		mustMkdir(t, target)
		writeTestFile(t, filepath.Join(target, "a.cs"), "class A {}\n")

		link := filepath.Join(root, "link")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		got, err := adapter.CanonicalPath("", filepath.Join(link, "a.cs"))
		if err != nil {
			t.Fatalf("CanonicalPath() error = %v", err)
		}

		if want := m.Path(filepath.Join(target, "a.cs")); got != want {
			t.Fatalf("CanonicalPath() = %s, want %s", got, want)
		}
	})

	t.Run("missing file keeps its name below the resolved parent", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := realTempDir(t)
		target := filepath.Join(root, "real")
		mustMkdir(t, target)

		link := filepath.Join(root, "link")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		got, err := adapter.CanonicalPath("", filepath.Join(link, "gone", "a.cs"))
		if err != nil {
			t.Fatalf("CanonicalPath() error = %v", err)
		}

		if want := m.Path(filepath.Join(target, "gone", "a.cs")); got != want {
			t.Fatalf("CanonicalPath() = %s, want %s", got, want)
		}
	})

	t.Run("path through a regular file cannot be resolved", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := realTempDir(t)
		file := filepath.Join(root, "plain.txt")
		writeTestFile(t, file, "not a directory\n")

		if _, err := adapter.CanonicalPath("", filepath.Join(file, "a.cs")); err == nil {
			t.Fatalf("CanonicalPath() expected error for path below a regular file")
		}
	})

	t.Run("empty name", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		if _, err := adapter.CanonicalPath("", ""); err == nil {
			t.Fatalf("CanonicalPath() expected error for empty name")
		}
	})
}

func TestLocalSourceFSAdapter_Exists(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	file := filepath.Join(root, "a.cs")
	writeTestFile(t, file, "class A {}\n")

	exists, err := adapter.Exists(m.Path(file))
	if err != nil || !exists {
		t.Fatalf("Exists(%s) = %v, %v; want true, nil", file, exists, err)
	}

	missing := filepath.Join(root, "b.cs")

	exists, err = adapter.Exists(m.Path(missing))
	if err != nil || exists {
		t.Fatalf("Exists(%s) = %v, %v; want false, nil", missing, exists, err)
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()

	info, err := adapter.FileInfo(m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !info.IsDir() {
		t.Fatalf("FileInfo(%s).IsDir() = false, want true", root)
	}

	if _, err := adapter.FileInfo(m.Path(filepath.Join(root, "missing"))); !os.IsNotExist(err) {
		t.Fatalf("FileInfo() error = %v, want not-exist", err)
	}
}

// realTempDir returns a temp dir with symlinks already resolved, so expected
// paths can be compared verbatim (macOS /var -> /private/var).
func realTempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("EvalSymlinks temp dir: %v", err)
	}

	return dir
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o750); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}
