package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"slnmap/model"
	"slnmap/term"
	"slnmap/watch"
)

var (
	watchFlagOut      string
	watchFlagDebounce int
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Watch a tree and rescan on changes",
	Long: `Scan a directory tree, then keep watching it and rescan whenever a
solution, project, or source file changes.

Each scan result is written as JSON, to stdout or to the --out file.
Watch mode always scans fresh and does not consult the result cache.

Examples:
  slnmap watch                      Watch the current directory
  slnmap watch ~/src/backend        Watch a specific tree
  slnmap watch -o result.json       Keep result.json up to date`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchFlagOut, "out", "o", "", "Write JSON to a file instead of stdout")
	watchCmd.Flags().IntVar(&watchFlagDebounce, "debounce-ms", 0, "Quiet period before a rescan fires (0 = use config)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	debounceMs := watchFlagDebounce
	if debounceMs <= 0 && cfg != nil {
		debounceMs = cfg.Watch.DebounceMs
	}

	return watch.Run(watch.Options{
		Root:     target,
		Debounce: time.Duration(debounceMs) * time.Millisecond,
		OnResult: writeWatchResult,
	})
}

// writeWatchResult emits one scan result, to the --out file when given,
// otherwise to stdout.
func writeWatchResult(set *model.SolutionSet) error {
	if len(set.Solutions) == 0 {
		term.Info("No .sln files to process under %s", set.StartPath)
		return nil
	}

	out, err := marshalSet(set)
	if err != nil {
		return err
	}

	if watchFlagOut != "" {
		if err := os.WriteFile(watchFlagOut, append(out, '\n'), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", watchFlagOut, err)
		}
		abs, _ := filepath.Abs(watchFlagOut)
		term.Verbose("wrote %s", abs)
		return nil
	}

	fmt.Fprintln(term.Stdout(), string(out))
	return nil
}
