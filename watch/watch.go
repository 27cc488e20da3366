// Package watch re-runs the solution scan when relevant files change.
package watch

import (
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"slnmap/discover"
	"slnmap/model"
	"slnmap/project"
	"slnmap/term"
)

// Options controls a watch session.
type Options struct {
	Root     string        // directory to scan and watch
	Debounce time.Duration // quiet period before a rescan fires
	OnResult func(*model.SolutionSet) error
}

// Run performs an initial scan, then watches the tree and rescans on
// changes to solution, project, or source files. It blocks until an
// interrupt signal arrives or OnResult returns an error.
func Run(opts Options) error {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return err
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 500 * time.Millisecond
	}

	set, err := discover.Run(root)
	if err != nil {
		return err
	}
	if err := opts.OnResult(set); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watchedDirs := make(map[string]bool)
	if err := addDirRecursive(watcher, root, watchedDirs); err != nil {
		return err
	}

	term.Info("Watching %d directories for changes (Ctrl+C to stop)...", len(watchedDirs))

	// Handle Ctrl+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	// Debounce state
	var debounceTimer *time.Timer
	pendingFiles := make(map[string]struct{})
	var pendingMu sync.Mutex
	resultErr := make(chan error, 1)

	runPending := func() {
		pendingMu.Lock()
		if len(pendingFiles) == 0 {
			pendingMu.Unlock()
			return
		}
		changed := make([]string, 0, len(pendingFiles))
		for f := range pendingFiles {
			changed = append(changed, f)
		}
		pendingFiles = make(map[string]struct{})
		pendingMu.Unlock()

		term.Verbose("  changed: %s", strings.Join(changed, ", "))

		start := time.Now()
		set, scanErr := discover.Run(root)
		if scanErr != nil {
			term.Errorf("rescan: %v", scanErr)
			return
		}
		if cbErr := opts.OnResult(set); cbErr != nil {
			resultErr <- cbErr
			return
		}
		solutions, projects, files := set.Counts()
		term.Summary(solutions, projects, files, time.Since(start).Round(time.Millisecond))
		term.Info("Watching for changes...")
	}

	for {
		select {
		case <-sigChan:
			term.Dim("\nStopping watch mode...")
			return nil

		case err := <-resultErr:
			return err

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			// New directories need watches of their own
			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if addErr := addDirRecursive(watcher, event.Name, watchedDirs); addErr != nil {
						term.Verbose("warning: failed to watch %s: %v", event.Name, addErr)
					}
					continue
				}
			}

			if !project.IsRelevantExt(event.Name) {
				continue
			}

			relPath, relErr := filepath.Rel(root, event.Name)
			if relErr != nil {
				relPath = event.Name
			}

			pendingMu.Lock()
			pendingFiles[relPath] = struct{}{}
			pendingMu.Unlock()

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(opts.Debounce, runPending)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			term.Errorf("watcher: %v", watchErr)
		}
	}
}

// addDirRecursive adds a directory and all subdirectories to the watcher,
// skipping build output and VCS directories.
func addDirRecursive(watcher *fsnotify.Watcher, dir string, watched map[string]bool) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		if project.ShouldSkipDir(d.Name()) {
			return filepath.SkipDir
		}

		if watched[path] {
			return nil
		}

		if err := watcher.Add(path); err != nil {
			return err
		}
		watched[path] = true
		return nil
	})
}
