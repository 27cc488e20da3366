package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	// Test that the root command has expected subcommands
	subcommands := rootCmd.Commands()

	expectedCommands := []string{"scan", "watch", "tree", "list", "cache", "config", "version", "completion"}
	foundCommands := make(map[string]bool)

	for _, cmd := range subcommands {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}
}

func TestRootFlags(t *testing.T) {
	flags := []string{
		"verbose",
		"quiet",
		"color",
		"dir",
		"config",
		"cache-path",
		"no-cache",
		"force",
		"log-level",
		"log-format",
	}

	for _, flag := range flags {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected --%s persistent flag on root command", flag)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	// Verify version command exists and has correct use string
	if versionCmd.Use != "version" {
		t.Errorf("expected Use to be 'version', got %q", versionCmd.Use)
	}
}

func TestConfigCommand(t *testing.T) {
	// Verify config command exists
	if configCmd.Use != "config" {
		t.Errorf("expected Use to be 'config', got %q", configCmd.Use)
	}

	// Check flags
	if configCmd.Flags().Lookup("format") == nil {
		t.Error("expected --format flag on config command")
	}
	if configCmd.Flags().Lookup("locations") == nil {
		t.Error("expected --locations flag on config command")
	}
}

func TestListSubcommands(t *testing.T) {
	subcommands := listCmd.Commands()
	expectedSubs := []string{"solutions", "projects", "files"}

	foundSubs := make(map[string]bool)
	for _, cmd := range subcommands {
		foundSubs[cmd.Name()] = true
	}

	for _, expected := range expectedSubs {
		if !foundSubs[expected] {
			t.Errorf("expected list subcommand %q not found", expected)
		}
	}

	if listProjectsCmd.Flags().Lookup("solution") == nil {
		t.Error("expected --solution flag on list projects command")
	}
	if listProjectsCmd.Flags().Lookup("top-level") == nil {
		t.Error("expected --top-level flag on list projects command")
	}
	if listFilesCmd.Flags().Lookup("language") == nil {
		t.Error("expected --language flag on list files command")
	}
}

func TestCacheSubcommands(t *testing.T) {
	subcommands := cacheCmd.Commands()
	expectedSubs := []string{"stats", "clean", "dump"}

	foundSubs := make(map[string]bool)
	for _, cmd := range subcommands {
		foundSubs[cmd.Name()] = true
	}

	for _, expected := range expectedSubs {
		if !foundSubs[expected] {
			t.Errorf("expected cache subcommand %q not found", expected)
		}
	}
}

func TestScanCommandFlags(t *testing.T) {
	if scanCmd.Flags().Lookup("out") == nil {
		t.Error("expected --out flag on scan command")
	}
}

func TestWatchCommandFlags(t *testing.T) {
	flags := []string{"out", "debounce-ms"}

	for _, flag := range flags {
		if watchCmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on watch command", flag)
		}
	}
}

func TestVersionString(t *testing.T) {
	vs := versionString()
	if !strings.Contains(vs, "slnmap") {
		t.Errorf("version string should contain 'slnmap', got: %s", vs)
	}
}

func TestRootHelp(t *testing.T) {
	// Capture help output
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--help"})

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "slnmap") {
		t.Error("help output should mention 'slnmap'")
	}
	if !strings.Contains(output, "scan") {
		t.Error("help output should mention 'scan' command")
	}
	if !strings.Contains(output, "watch") {
		t.Error("help output should mention 'watch' command")
	}
}
