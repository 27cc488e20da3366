package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"slnmap/cache"
	"slnmap/term"
)

var cacheDumpCmd = &cobra.Command{
	Use:   "dump <root>",
	Short: "Dump cached results for a scan root",
	Long: `Display the cached JSON result for a scan root.

The root can be given as a path substring. Searches all cache entries
for matching scan roots.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		cachePath, err := getCachePath()
		if err != nil {
			return err
		}

		db, err := cache.Open(cachePath)
		if err != nil {
			return err
		}
		defer db.Close()

		var found bool
		err = db.View(func(key string, entry cache.Entry) error {
			contentHash, root := cache.ParseKey(key)

			// Match by path substring
			if !strings.Contains(root, query) {
				return nil
			}

			found = true
			term.Printf("Root:        %s\n", root)
			term.Printf("Fingerprint: %s\n", contentHash)
			term.Printf("Scanned:     %s\n", time.Unix(entry.ScannedAt, 0).Format(time.RFC3339))
			term.Printf("Created:     %s\n", time.Unix(entry.CreatedAt, 0).Format(time.RFC3339))
			if len(entry.Result) > 0 {
				term.Printf("\n--- Result ---\n")
				fmt.Fprintf(term.Stdout(), "%s\n", entry.Result)
			} else {
				term.Dim("(no result stored)")
			}
			term.Println()
			return nil
		})
		if err != nil {
			return err
		}

		if !found {
			return fmt.Errorf("no cache entries found matching %q", query)
		}

		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheDumpCmd)
}
