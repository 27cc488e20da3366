package watch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestAddDirRecursive(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "watch-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	for _, dir := range []string{"src", "src/App", "bin", ".git", "src/App/obj"} {
		if err := os.MkdirAll(filepath.Join(tmpDir, dir), 0755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool)
	if err := addDirRecursive(watcher, tmpDir, watched); err != nil {
		t.Fatalf("addDirRecursive() failed: %v", err)
	}

	for _, want := range []string{"", "src", "src/App"} {
		if !watched[filepath.Join(tmpDir, want)] {
			t.Errorf("directory %q not watched", want)
		}
	}
	for _, skip := range []string{"bin", ".git", "src/App/obj"} {
		if watched[filepath.Join(tmpDir, skip)] {
			t.Errorf("directory %q should be skipped", skip)
		}
	}
}
