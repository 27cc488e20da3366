package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"slnmap/cache"
	"slnmap/discover"
	"slnmap/model"
	"slnmap/term"
)

var (
	scanFlagOut string
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a directory tree for solutions",
	Long: `Scan a directory tree for .sln files and resolve their projects.

The result is written to stdout as JSON. Pass a directory to scan, a
single .sln file, or nothing to scan the current directory.

Examples:
  slnmap scan                   Scan the current directory
  slnmap scan ~/src/backend     Scan a specific tree
  slnmap scan App.sln           Resolve a single solution file
  slnmap scan -o result.json    Write the JSON to a file instead`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanFlagOut, "out", "o", "", "Write JSON to a file instead of stdout")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	root, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	start := time.Now()
	set, fromCache, err := scanTarget(root)
	if err != nil {
		return err
	}

	if len(set.Solutions) == 0 {
		term.Info("No .sln files to process under %s", set.StartPath)
		return nil
	}

	out, err := marshalSet(set)
	if err != nil {
		return err
	}

	if scanFlagOut != "" {
		if err := os.WriteFile(scanFlagOut, append(out, '\n'), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", scanFlagOut, err)
		}
		term.Success("Wrote %s", scanFlagOut)
	} else {
		fmt.Fprintln(term.Stdout(), string(out))
	}

	if cfg != nil && cfg.Verbose {
		solutions, projects, files := set.Counts()
		if fromCache {
			term.Dim("(from cache)")
		}
		term.Summary(solutions, projects, files, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// scanTarget returns the solution set for root, consulting the result
// cache when enabled. The second return reports whether the result came
// from the cache.
func scanTarget(root string) (*model.SolutionSet, bool, error) {
	useCache := cfg != nil && cfg.Cache.Enabled && !IsForce()
	if useCache {
		// File targets are cheap to resolve directly
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			useCache = false
		}
	}

	var fingerprint string
	if useCache {
		fingerprint = discover.Fingerprint(root)
		if fingerprint == "" {
			useCache = false
		}
	}

	if useCache {
		if set := cacheLookup(fingerprint, root); set != nil {
			return set, true, nil
		}
	}

	set, err := discover.Run(root)
	if err != nil {
		return nil, false, err
	}

	if useCache {
		cacheStore(fingerprint, root, set)
	}
	return set, false, nil
}

// cacheLookup returns the cached result for the fingerprint/root pair,
// or nil when there is none.
func cacheLookup(fingerprint, root string) *model.SolutionSet {
	cachePath, err := getCachePath()
	if err != nil {
		return nil
	}
	db, err := cache.Open(cachePath)
	if err != nil {
		term.Verbose("cache unavailable: %v", err)
		return nil
	}
	defer db.Close()

	res := db.Lookup(cache.MakeKey(fingerprint, root))
	if res == nil {
		return nil
	}
	var set model.SolutionSet
	if err := json.Unmarshal(res.Data, &set); err != nil {
		term.Warnf("discarding unreadable cache entry for %s: %v", root, err)
		return nil
	}
	term.Verbose("cache hit for %s (scanned %s)", root, res.Time.Format(time.RFC3339))
	return &set
}

// cacheStore records a scan result under the fingerprint/root pair.
func cacheStore(fingerprint, root string, set *model.SolutionSet) {
	data, err := json.Marshal(set)
	if err != nil {
		return
	}
	cachePath, err := getCachePath()
	if err != nil {
		return
	}
	db, err := cache.Open(cachePath)
	if err != nil {
		term.Verbose("cache unavailable: %v", err)
		return
	}
	defer db.Close()

	if err := db.Store(cache.MakeKey(fingerprint, root), time.Now(), data); err != nil {
		term.Verbose("cache store failed: %v", err)
	}
}

// marshalSet renders the set as indented JSON per the output config.
func marshalSet(set *model.SolutionSet) ([]byte, error) {
	indent := 2
	if cfg != nil {
		indent = cfg.Output.Indent
	}
	if indent <= 0 {
		return json.Marshal(set)
	}
	return json.MarshalIndent(set, "", strings.Repeat(" ", indent))
}
