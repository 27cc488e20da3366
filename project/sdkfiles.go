package project

import (
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"slnmap/model"
)

// ScanSourceFiles recursively enumerates source files under folder and
// classifies them. SDK-style projects rely on implicit globbing instead
// of explicit Compile items, so their file list comes from disk. Build
// output and VCS directories are skipped. An empty or missing folder
// yields an empty collection, never an error.
func ScanSourceFiles(folder string) []*model.CodeFile {
	files := []*model.CodeFile{}
	filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if ShouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		lang := model.DetectLanguage(path)
		if !lang.IsSourceFile() {
			return nil
		}
		logrus.Debugf("found source file %s", path)
		files = append(files, &model.CodeFile{
			FileName: filepath.Base(path),
			FullPath: path,
			Language: lang,
		})
		return nil
	})
	return files
}
