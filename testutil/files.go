package testutil

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

// TempDir creates a scratch directory removed when the test ends.
func TempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "sha256sum-test")
	if err != nil {
		t.Fatalf("create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// WriteFile writes data to name under dir and returns the full path.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
