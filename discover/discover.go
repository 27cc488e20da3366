// Package discover walks a root path for solution files and resolves
// each one into the final model.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"slnmap/model"
	"slnmap/project"
	"slnmap/solution"
)

// Run discovers every solution file under root and resolves each one in
// traversal order. Zero solutions is not an error: the returned set has
// an empty solutions collection and the caller decides how to report it.
func Run(root string) (*model.SolutionSet, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving scan root %s: %w", root, err)
	}
	logrus.Debugf("discovering solutions under %s", absRoot)

	set := &model.SolutionSet{
		StartPath: absRoot,
		Solutions: []*model.Solution{},
	}

	slnFiles, err := CollectSolutionFiles(absRoot)
	if err != nil {
		return nil, err
	}
	for _, slnPath := range slnFiles {
		sln, err := solution.Resolve(slnPath)
		if err != nil {
			return nil, err
		}
		set.Solutions = append(set.Solutions, sln)
	}
	logrus.Debugf("resolved %d solutions under %s", len(set.Solutions), absRoot)
	return set, nil
}

// CollectSolutionFiles returns the .sln files to scan for target. A .sln
// file is returned as-is; a directory is walked recursively in lexical
// order, skipping build output and VCS directories. Any other existing
// target yields a warning and no files. A missing target is an error.
func CollectSolutionFiles(target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("scan target: %w", err)
	}
	if !info.IsDir() {
		if strings.HasSuffix(target, ".sln") {
			return []string{target}, nil
		}
		logrus.Warnf("no .sln file found at %s", target)
		return []string{}, nil
	}

	var files []string
	err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if project.ShouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".sln") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
