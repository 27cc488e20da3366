package discover

import (
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	ignore "github.com/sabhiram/go-gitignore"

	"slnmap/project"
)

// Fingerprint computes a content hash over every file under root whose
// extension can affect a scan result. A tree that has not changed hashes
// to the same value, which makes the fingerprint usable as a cache key.
// A .gitignore at the root is honored when present. Returns "" when no
// relevant files exist.
func Fingerprint(root string) string {
	h := sha256.New()

	// Try to load .gitignore from root
	var gitIgnore *ignore.GitIgnore
	if gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
		gitIgnore = gi
	}

	var files []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if project.ShouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if gitIgnore != nil {
			relPath, err := filepath.Rel(root, path)
			if err == nil && gitIgnore.MatchesPath(relPath) {
				return nil
			}
		}
		if !project.IsRelevantExt(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})

	if len(files) == 0 {
		return ""
	}

	// Sort for deterministic ordering
	sort.Strings(files)

	for _, f := range files {
		h.Write([]byte(f))
		h.Write([]byte{0})
		content, err := os.ReadFile(f)
		if err == nil {
			h.Write(content)
		}
		h.Write([]byte{0})
	}

	return fmt.Sprintf("%x", h.Sum(nil)[:8])
}
