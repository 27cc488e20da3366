package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"slnmap/model"
	"slnmap/term"
)

var listSolutionsCmd = &cobra.Command{
	Use:   "solutions [path]",
	Short: "List solution files",
	Long:  `List every .sln file found under the given path, one per line.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := listScan(args)
		if err != nil {
			return err
		}

		for _, sln := range set.Solutions {
			fmt.Fprintln(term.Stdout(), filepath.Join(sln.FullPath, sln.SolutionName))
		}

		if len(set.Solutions) == 0 {
			term.Dim("No solutions found")
		}
		return nil
	},
}

func init() {
	listCmd.AddCommand(listSolutionsCmd)
}

// listScan resolves the optional path argument and runs a cached scan.
func listScan(args []string) (*model.SolutionSet, error) {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	root, err := filepath.Abs(target)
	if err != nil {
		return nil, err
	}
	set, _, err := scanTarget(root)
	if err != nil {
		return nil, err
	}
	return set, nil
}
