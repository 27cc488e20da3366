// Package cmd implements the CLI commands for slnmap.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slnmap/config"
	"slnmap/logging"
	"slnmap/project"
	"slnmap/term"
)

var (
	// Global flags
	flagVerbose    bool
	flagQuiet      bool
	flagColor      string
	flagDir        string
	flagConfigFile string
	flagCachePath  string
	flagNoCache    bool
	flagForce      bool
	flagLogLevel   string
	flagLogFormat  string

	// Loaded configuration
	cfg *config.Config
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "slnmap",
	Short: "Map Visual Studio solutions and their project trees",
	Long: `slnmap - Map Visual Studio solutions and their project trees

Walks a directory tree for .sln files and resolves every project each
solution declares, following project references recursively. The result
is a JSON document describing solutions, projects, and their source
files. Results are cached by content fingerprint for fast repeat scans.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Handle -C flag (change directory)
		if flagDir != "" {
			if err := os.Chdir(flagDir); err != nil {
				return fmt.Errorf("changing to directory %s: %w", flagDir, err)
			}
		}

		// Get current working directory
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}

		// Load configuration
		result, err := config.Load(config.LoadOptions{
			CWD:        cwd,
			ConfigFile: flagConfigFile,
			Verbose:    flagVerbose,
		})
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = result.Config

		// Apply flag overrides to config
		applyFlagOverrides()

		// Initialize diagnostic logging
		logging.Setup(cfg.Log)

		// Extra directories to skip during scans
		project.AddSkipDirs(cfg.Scan.SkipDirs)

		// Initialize terminal settings
		term.SetVerbose(cfg.Verbose)
		term.SetQuiet(cfg.Quiet)

		switch cfg.Color {
		case "always":
			term.SetColorMode(term.ColorModeAlways)
		case "never":
			term.SetColorMode(term.ColorModeNever)
		default:
			term.SetColorMode(term.ColorModeAuto)
		}

		return nil
	},
	// Silence usage on errors (we handle our own error messages)
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Quiet mode - suppress status output")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Color output mode: auto, always, never")
	rootCmd.PersistentFlags().StringVarP(&flagDir, "dir", "C", "", "Change to directory before running")
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "Config file path (overrides auto-discovery)")
	rootCmd.PersistentFlags().StringVar(&flagCachePath, "cache-path", "", "Cache database path")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Disable the result cache")
	rootCmd.PersistentFlags().BoolVar(&flagForce, "force", false, "Ignore cached results, always rescan")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warning, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: text, json")
}

// applyFlagOverrides applies command-line flag values to the config.
// Flags only override if they were explicitly set.
func applyFlagOverrides() {
	if flagVerbose {
		cfg.Verbose = true
		if flagLogLevel == "" {
			cfg.Log.Level = "debug"
		}
	}
	if flagQuiet {
		cfg.Quiet = true
	}
	if flagColor != "" {
		cfg.Color = flagColor
	}
	if flagCachePath != "" {
		cfg.Cache.Path = flagCachePath
	}
	if flagNoCache {
		cfg.Cache.Enabled = false
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.Log.Format = flagLogFormat
	}
}

// GetConfig returns the loaded configuration.
// Must be called after PersistentPreRunE has executed.
func GetConfig() *config.Config {
	return cfg
}

// IsForce returns whether the force flag was set.
func IsForce() bool {
	return flagForce
}
