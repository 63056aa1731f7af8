package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func newTestParser(t *testing.T, cli *CLI) *kong.Kong {
	t.Helper()
	return kong.Must(cli,
		kong.Name("png2webp"),
		kong.Vars{"version": "test"},
	)
}

func TestCLI_Structure(t *testing.T) {
	// Compile-time check that the expected commands exist
	var cli CLI
	_ = cli.Convert
	_ = cli.Check
	_ = cli.Version
}

func TestKongParsing_ConvertCommand(t *testing.T) {
	testDir := t.TempDir()

	testFile := filepath.Join(testDir, "not_a_dir.png")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	testCases := []struct {
		name        string
		args        []string
		expectError bool
	}{
		{
			name:        "Convert with directory",
			args:        []string{"convert", testDir},
			expectError: false,
		},
		{
			name:        "Convert with delete and lossless flags",
			args:        []string{"convert", testDir, "--delete", "--lossless"},
			expectError: false,
		},
		{
			name:        "Convert with quality and workers",
			args:        []string{"convert", testDir, "--quality", "80", "--workers", "2"},
			expectError: false,
		},
		{
			name:        "Convert with no directory",
			args:        []string{"convert"},
			expectError: true,
		},
		{
			name:        "Convert with non-existent directory",
			args:        []string{"convert", filepath.Join(testDir, "nope")},
			expectError: true,
		},
		{
			name:        "Convert with file instead of directory",
			args:        []string{"convert", testFile},
			expectError: true,
		},
		{
			name:        "Convert with quality out of range",
			args:        []string{"convert", testDir, "--quality", "0"},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var cli CLI
			parser := newTestParser(t, &cli)

			ctx, err := parser.Parse(tc.args)

			if tc.expectError {
				if err == nil {
					t.Errorf("Expected error for args %v, but parsing succeeded", tc.args)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for args %v: %v", tc.args, err)
				} else if !strings.Contains(ctx.Command(), "convert") {
					t.Errorf("Expected 'convert' command, got %q", ctx.Command())
				}
			}
		})
	}
}

func TestKongParsing_ConvertIsDefaultCommand(t *testing.T) {
	testDir := t.TempDir()

	var cli CLI
	parser := newTestParser(t, &cli)

	// a bare directory argument should select convert
	ctx, err := parser.Parse([]string{testDir, "--delete"})
	if err != nil {
		t.Fatalf("Failed to parse bare directory: %v", err)
	}

	if !strings.Contains(ctx.Command(), "convert") {
		t.Errorf("Expected 'convert' command, got %q", ctx.Command())
	}
	if cli.Convert.Directory != testDir {
		t.Errorf("Directory = %q, expected %q", cli.Convert.Directory, testDir)
	}
	if !cli.Convert.Delete {
		t.Error("Expected Delete flag to be set")
	}
	if cli.Convert.Lossless {
		t.Error("Lossless should default to false")
	}
}

func TestKongParsing_ConvertDefaults(t *testing.T) {
	testDir := t.TempDir()

	var cli CLI
	parser := newTestParser(t, &cli)

	if _, err := parser.Parse([]string{"convert", testDir}); err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if cli.Convert.Quality != 100 {
		t.Errorf("Quality = %d, expected default 100", cli.Convert.Quality)
	}
	if cli.Convert.Workers != 0 {
		t.Errorf("Workers = %d, expected default 0", cli.Convert.Workers)
	}
	if cli.Convert.Delete || cli.Convert.Lossless || cli.Convert.Verify || cli.Convert.DryRun {
		t.Error("Boolean flags should all default to false")
	}
}

func TestKongParsing_CheckCommand(t *testing.T) {
	var cli CLI
	parser := newTestParser(t, &cli)

	ctx, err := parser.Parse([]string{"check"})
	if err != nil {
		t.Fatalf("Failed to parse check command: %v", err)
	}

	if ctx.Command() != "check" {
		t.Errorf("Expected 'check' command, got %q", ctx.Command())
	}
}

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}

	if Version != "dev" {
		t.Logf("Version is %q (expected 'dev' for development builds)", Version)
	}
}
