// Package solution parses Visual Studio solution files and resolves the
// projects they declare.
package solution

import (
	"regexp"
	"strings"
)

// ProjectLine is one project declaration extracted from a .sln file.
type ProjectLine struct {
	Name string // display name from the declaration
	Path string // relative path as written, possibly with backslashes
}

// Matches declarations like:
//
//	Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "App", "src\App\App.csproj", "{2150E333-8FDC-42A3-9474-1A3956D46DE8}"
//
// The type GUID and project GUID are matched but not captured.
var projectLineRegex = regexp.MustCompile(`(?i)^Project\("\{[^}]+\}"\)\s*=\s*"([^"]+)"\s*,\s*"([^"]+)"\s*,\s*"\{[^}]+\}"`)

// ExtractProjectLines scans solution text line by line and returns every
// project declaration found. Non-matching lines (header, sections,
// nesting metadata) are skipped; that is the normal case, not an error.
func ExtractProjectLines(content string) []ProjectLine {
	var lines []ProjectLine
	for _, line := range strings.Split(content, "\n") {
		m := projectLineRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		lines = append(lines, ProjectLine{Name: m[1], Path: m[2]})
	}
	return lines
}

// IsProjectPath reports whether a declared path points at a resolvable
// project file. Solution folders and other entry kinds declare paths
// without a project extension and are excluded.
func IsProjectPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".csproj") || strings.HasSuffix(lower, ".vbproj")
}
