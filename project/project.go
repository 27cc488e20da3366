// Package project parses project files and recursively resolves their
// references into a tree of model.Project entities.
package project

import (
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"slnmap/model"
)

// sdkProjectType is the Sdk attribute value marking an SDK-style project,
// which relies on implicit file globbing instead of explicit Compile items.
const sdkProjectType = "Microsoft.NET.Sdk"

// projectXML holds what a scan needs from a project file: the root
// element's Sdk attribute and the Include attributes of every Compile and
// ProjectReference element, in document order.
type projectXML struct {
	Sdk               string
	CompileIncludes   []string
	ReferenceIncludes []string
}

// parseProjectXML tokenizes the file and matches elements by local name,
// so namespaced (old-style) and namespace-free (SDK-style) project files
// are handled the same way.
func parseProjectXML(path string) (*projectXML, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening project file: %w", err)
	}
	defer f.Close()

	doc := &projectXML{}
	dec := xml.NewDecoder(f)
	sawRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing project file %s: %w", path, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !sawRoot {
			sawRoot = true
			for _, attr := range se.Attr {
				if attr.Name.Local == "Sdk" {
					doc.Sdk = attr.Value
				}
			}
			continue
		}
		switch se.Name.Local {
		case "Compile":
			if inc, ok := attrValue(se, "Include"); ok {
				doc.CompileIncludes = append(doc.CompileIncludes, inc)
			}
		case "ProjectReference":
			if inc, ok := attrValue(se, "Include"); ok {
				doc.ReferenceIncludes = append(doc.ReferenceIncludes, inc)
			}
		}
	}
	return doc, nil
}

func attrValue(se xml.StartElement, name string) (string, bool) {
	for _, attr := range se.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// NormalizePath converts Windows-style backslash separators to slashes so
// paths written in solution and project files resolve on any host.
func NormalizePath(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// resolveRelative resolves an Include attribute against the project
// folder. Absolute includes are kept as-is.
func resolveRelative(folder, include string) string {
	p := NormalizePath(include)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(folder, p))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ResolveTree resolves the project file at path as the root of a fresh
// resolution pass. After resolution it applies the finishing step: each
// direct child's folder path is recomputed from its own file path.
func ResolveTree(path string) (*model.Project, error) {
	visited := make(map[string]bool)
	proj, children, err := Resolve(path, visited)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		child.ProjectFolderPath = filepath.Dir(child.FullPath)
	}
	return proj, nil
}

// Resolve parses the project file at path and recursively resolves its
// project references into child projects. visited holds the absolute
// paths already resolved in this pass; it is shared down the whole
// recursion so a path is descended into at most once, which both breaks
// reference cycles and keeps diamond-shaped graphs from re-resolving.
// The returned slice is the project's direct children.
//
// A missing or unparseable project file is a hard error: the caller asked
// for this exact path. Missing compile items, by contrast, are skipped.
func Resolve(path string, visited map[string]bool) (*model.Project, []*model.Project, error) {
	absPath, err := filepath.Abs(NormalizePath(path))
	if err != nil {
		return nil, nil, fmt.Errorf("resolving project path %s: %w", path, err)
	}
	logrus.Debugf("resolving project %s", absPath)

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, nil, fmt.Errorf("project file %s: %w", absPath, err)
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("project file %s: %w", absPath, fs.ErrNotExist)
	}

	doc, err := parseProjectXML(absPath)
	if err != nil {
		return nil, nil, err
	}

	folder := filepath.Dir(absPath)
	base := filepath.Base(absPath)
	proj := &model.Project{
		FullPath:          absPath,
		ProjectFolderPath: folder,
		Name:              strings.TrimSuffix(base, filepath.Ext(base)),
		CodeFiles:         []*model.CodeFile{},
		ChildProjects:     []*model.Project{},
	}

	for _, include := range doc.CompileIncludes {
		itemPath := resolveRelative(folder, include)
		if !fileExists(itemPath) {
			logrus.Debugf("compile item %s does not exist, skipping", itemPath)
			continue
		}
		lang := model.DetectLanguage(itemPath)
		switch {
		case lang.IsSourceFile():
			proj.CodeFiles = append(proj.CodeFiles, &model.CodeFile{
				FileName: filepath.Base(itemPath),
				FullPath: itemPath,
				Language: lang,
			})
		case lang.IsProjectFile():
			// Some project files list another project as a compile item.
			// Treat it like a project reference, cycle guard included.
			if visited[itemPath] {
				logrus.Debugf("already visited %s, skipping", itemPath)
				continue
			}
			visited[itemPath] = true
			child, _, err := Resolve(itemPath, visited)
			if err != nil {
				return nil, nil, err
			}
			proj.ChildProjects = append(proj.ChildProjects, child)
		}
	}

	for _, include := range doc.ReferenceIncludes {
		refPath := resolveRelative(folder, include)
		if visited[refPath] {
			logrus.Debugf("already visited %s, skipping", refPath)
			continue
		}
		visited[refPath] = true
		child, _, err := Resolve(refPath, visited)
		if err != nil {
			return nil, nil, err
		}
		proj.ChildProjects = append(proj.ChildProjects, child)
	}

	if len(proj.CodeFiles) == 0 && doc.Sdk == sdkProjectType {
		logrus.Debugf("no compile items in SDK-style project %s, scanning %s", proj.Name, folder)
		proj.CodeFiles = ScanSourceFiles(folder)
	}

	logrus.Debugf("resolved %s: %d code files, %d child projects",
		proj.Name, len(proj.CodeFiles), len(proj.ChildProjects))
	return proj, proj.ChildProjects, nil
}
