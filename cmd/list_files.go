package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"slnmap/model"
	"slnmap/term"
)

var listFilesLanguage string

var listFilesCmd = &cobra.Command{
	Use:   "files [path]",
	Short: "List code files",
	Long: `List every code file owned by a resolved project, one per line.

Files belonging to projects referenced more than once are printed once.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := listScan(args)
		if err != nil {
			return err
		}

		lang := model.Language(strings.ToUpper(listFilesLanguage))

		seen := make(map[string]bool)
		var count int
		var walk func(p *model.Project)
		walk = func(p *model.Project) {
			for _, f := range p.CodeFiles {
				if lang != "" && f.Language != lang {
					continue
				}
				if seen[f.FullPath] {
					continue
				}
				seen[f.FullPath] = true
				fmt.Fprintln(term.Stdout(), f.FullPath)
				count++
			}
			for _, child := range p.ChildProjects {
				walk(child)
			}
		}

		for _, sln := range set.Solutions {
			for _, p := range sln.Projects {
				walk(p)
			}
		}

		if count == 0 {
			term.Dim("No code files found")
		}
		return nil
	},
}

func init() {
	listFilesCmd.Flags().StringVarP(&listFilesLanguage, "language", "l", "", "Only list files with the given language code (e.g. CS, VB)")
	listCmd.AddCommand(listFilesCmd)
}
