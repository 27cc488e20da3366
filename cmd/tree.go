package cmd

import (
	"github.com/spf13/cobra"

	"slnmap/term"
	"slnmap/tree"
)

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Print the solution map as a tree",
	Long: `Scan a directory tree and print the solutions, projects, and project
references as an indented tree instead of JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := listScan(args)
		if err != nil {
			return err
		}

		if len(set.Solutions) == 0 {
			term.Info("No .sln files to process under %s", set.StartPath)
			return nil
		}

		colors := tree.DefaultColors()
		if term.IsPlain() {
			colors = tree.PlainColors()
		}
		tree.Render(term.Stdout(), set, colors)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
