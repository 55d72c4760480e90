package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"appctl/internal/ports"
)

// TestFileSystem implements ports.FileSystem inside a temporary directory. Absolute paths
// and paths under "~" are both mapped below the sandbox, so config and template locations
// from a real configuration can be used unchanged.
type TestFileSystem struct {
	baseDir string
}

func NewTestFileSystem(t *testing.T) *TestFileSystem {
	t.Helper()
	return &TestFileSystem{baseDir: t.TempDir()}
}

func (f *TestFileSystem) resolvePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		return filepath.Join(f.baseDir, "home", strings.TrimPrefix(path, "~"))
	}
	return filepath.Join(f.baseDir, filepath.Clean("/"+path))
}

func (f *TestFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(f.resolvePath(path))
}

func (f *TestFileSystem) WriteFile(path string, content []byte, _ ports.AccessMode) error {
	resolved := f.resolvePath(path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0700); err != nil {
		return err
	}
	return os.WriteFile(resolved, content, 0600)
}

func (f *TestFileSystem) EnsureDirExists(path string) error {
	return os.MkdirAll(filepath.Dir(f.resolvePath(path)), 0700)
}

func (f *TestFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(f.resolvePath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
