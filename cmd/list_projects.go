package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"slnmap/model"
	"slnmap/term"
)

var (
	listProjectsSolution string
	listProjectsTopLevel bool
)

var listProjectsCmd = &cobra.Command{
	Use:   "projects [path]",
	Short: "List resolved project files",
	Long: `List every project resolved from the scanned solutions, one per line.

Projects referenced by more than one solution are printed once.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := listScan(args)
		if err != nil {
			return err
		}

		seen := make(map[string]bool)
		var count int
		for _, sln := range set.Solutions {
			if listProjectsSolution != "" && sln.SolutionName != listProjectsSolution {
				continue
			}
			for _, p := range sln.Projects {
				count += printProjects(p, seen, listProjectsTopLevel)
			}
		}

		if count == 0 {
			term.Dim("No projects found")
		}
		return nil
	},
}

func init() {
	listProjectsCmd.Flags().StringVarP(&listProjectsSolution, "solution", "s", "", "Only list projects from the named solution (e.g. App.sln)")
	listProjectsCmd.Flags().BoolVar(&listProjectsTopLevel, "top-level", false, "Only list projects declared directly in a solution")
	listCmd.AddCommand(listProjectsCmd)
}

// printProjects prints the project and, unless topLevel is set, its
// resolved references. Returns the number of lines printed.
func printProjects(p *model.Project, seen map[string]bool, topLevel bool) int {
	var count int
	if !seen[p.FullPath] {
		seen[p.FullPath] = true
		fmt.Fprintln(term.Stdout(), p.FullPath)
		count++
	}
	if topLevel {
		return count
	}
	for _, child := range p.ChildProjects {
		count += printProjects(child, seen, topLevel)
	}
	return count
}
