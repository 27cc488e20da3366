package solution

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"slnmap/model"
	"slnmap/project"
)

// Resolve parses the solution file at slnPath and resolves every project
// it declares, in line order. An unreadable solution file is not fatal:
// the error is logged and a Solution with no projects is returned.
// A project entry that fails to resolve (missing file, bad XML) is
// logged and skipped; the remaining entries are still resolved.
func Resolve(slnPath string) (*model.Solution, error) {
	absPath, err := filepath.Abs(slnPath)
	if err != nil {
		return nil, fmt.Errorf("resolving solution path %s: %w", slnPath, err)
	}
	folder := filepath.Dir(absPath)

	sln := &model.Solution{
		FullPath:     folder,
		SolutionName: filepath.Base(absPath),
		Projects:     []*model.Project{},
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		logrus.Warnf("could not read solution %s: %v", absPath, err)
		return sln, nil
	}
	logrus.Debugf("parsing solution %s", absPath)

	for _, line := range ExtractProjectLines(string(content)) {
		if !IsProjectPath(line.Path) {
			logrus.Debugf("skipping solution entry %q (%s): not a project file", line.Name, line.Path)
			continue
		}
		projPath := filepath.Join(folder, project.NormalizePath(line.Path))
		proj, err := project.ResolveTree(projPath)
		if err != nil {
			logrus.Warnf("skipping project %q in %s: %v", line.Name, sln.SolutionName, err)
			continue
		}
		sln.Projects = append(sln.Projects, proj)
	}

	return sln, nil
}
