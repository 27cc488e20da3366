// Package model defines the entities produced by a scan: solutions,
// projects, code files, and their language classification.
package model

import (
	"path/filepath"
	"strings"
)

// Language classifies a file by its extension. The string value is the
// short code used in JSON output.
type Language string

const (
	LangCSharp     Language = "CS"
	LangFSharp     Language = "FS"
	LangVB         Language = "VB"
	LangPython     Language = "PY"
	LangJava       Language = "JAVA"
	LangJavaScript Language = "JS"
	// LangCSProject and LangVBProject flag that a referenced file is itself
	// a project manifest, not a source file.
	LangCSProject Language = "CSPROJECT"
	LangVBProject Language = "VBPROJECT"
	// LangEmpty is the fallback for unrecognized extensions.
	LangEmpty Language = "EMPTY"
)

var languageByExt = map[string]Language{
	".cs":     LangCSharp,
	".fs":     LangFSharp,
	".vb":     LangVB,
	".py":     LangPython,
	".java":   LangJava,
	".js":     LangJavaScript,
	".csproj": LangCSProject,
	".vbproj": LangVBProject,
}

// DetectLanguage classifies a file name by its lowercased extension.
// Unknown extensions (including none) yield LangEmpty.
func DetectLanguage(fileName string) Language {
	ext := strings.ToLower(filepath.Ext(fileName))
	if lang, ok := languageByExt[ext]; ok {
		return lang
	}
	return LangEmpty
}

// IsProjectFile reports whether the tag marks a project manifest rather
// than a source file.
func (l Language) IsProjectFile() bool {
	return l == LangCSProject || l == LangVBProject
}

// IsSourceFile reports whether the tag is a real source language that a
// project can own as a CodeFile.
func (l Language) IsSourceFile() bool {
	return l == LangCSharp || l == LangVB
}

// CodeFile is a single source file belonging to a project.
type CodeFile struct {
	FileName string   `json:"file_name"` // base name, e.g. "Program.cs"
	FullPath string   `json:"full_path"` // absolute path on disk
	Language Language `json:"language"`
}

// Project is one project file plus everything it pulls in: its source
// files and its recursively resolved project references.
type Project struct {
	FullPath          string      `json:"full_path"`           // absolute path to the project file
	ProjectFolderPath string      `json:"project_folder_path"` // absolute path of the containing folder
	Name              string      `json:"name"`                // file stem, e.g. "App" for App.csproj
	CodeFiles         []*CodeFile `json:"code_files"`
	ChildProjects     []*Project  `json:"child_projects"`
}

// Solution is one .sln file and its top-level projects.
type Solution struct {
	FullPath     string     `json:"full_path"`     // absolute path of the folder containing the .sln
	SolutionName string     `json:"solution_name"` // file name, e.g. "App.sln"
	Projects     []*Project `json:"projects"`
}

// SolutionSet is the result of one discovery run.
type SolutionSet struct {
	StartPath string      `json:"start_path"` // absolute root that was searched
	Solutions []*Solution `json:"solutions"`
}

// Counts tallies solutions, resolved projects, and code files. Nested
// project references count once per appearance in the tree.
func (s *SolutionSet) Counts() (solutions, projects, files int) {
	var walk func(p *Project)
	walk = func(p *Project) {
		projects++
		files += len(p.CodeFiles)
		for _, child := range p.ChildProjects {
			walk(child)
		}
	}
	solutions = len(s.Solutions)
	for _, sln := range s.Solutions {
		for _, p := range sln.Projects {
			walk(p)
		}
	}
	return solutions, projects, files
}
