package project

import (
	"path/filepath"
	"strings"
)

// SkipDirs are directories not descended into when walking project trees
var SkipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"bin":          true,
	"obj":          true,
	".vs":          true,
	"TestResults":  true,
}

// RelevantExtensions are the file extensions that can change a scan's
// result: solution and project manifests plus the classifier's source
// extensions. Cache fingerprinting and watch mode filter on these.
var RelevantExtensions = map[string]bool{
	".sln":    true,
	".csproj": true,
	".vbproj": true,
	".cs":     true,
	".fs":     true,
	".vb":     true,
	".py":     true,
	".java":   true,
	".js":     true,
}

// ShouldSkipDir returns true if the directory should be skipped during walks
func ShouldSkipDir(name string) bool {
	return SkipDirs[name]
}

// AddSkipDirs adds extra directory names to the skip set. The CLI applies
// configured skip directories here before scanning starts.
func AddSkipDirs(names []string) {
	for _, name := range names {
		if name != "" {
			SkipDirs[name] = true
		}
	}
}

// IsRelevantExt returns true if the file's extension can affect a scan result
func IsRelevantExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return RelevantExtensions[ext]
}
