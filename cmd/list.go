package cmd

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List solutions, projects, or code files",
	Long:  `List flat views of the scanned solution structure, one path per line.`,
}

func init() {
	rootCmd.AddCommand(listCmd)

	// Subcommands are added in their respective files:
	// - list_solutions.go
	// - list_projects.go
	// - list_files.go
}
