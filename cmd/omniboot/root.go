// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for omniboot.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Ner-Kun/omniboot/internal/config"
	"github.com/Ner-Kun/omniboot/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "omniboot [launcher args...]",
		Short: "Bootstrap and run the Omni-trans launcher",
		Long: TitleStyle.Render("omniboot") + SubtitleStyle.Render(" - Bootstrap and run the Omni-trans launcher") + `

omniboot makes sure 'launcher/start.py' exists next to its own binary,
downloading it once when absent, then hands control to a Python
interpreter running that script. Every argument after the command name
is forwarded to the launcher verbatim, and the launcher's exit code
becomes omniboot's exit code.

Omniboot's own flags must come first; the first token it does not
recognize starts the forwarded vector.

` + SubtitleStyle.Render("Examples:") + `
  omniboot                  Start the launcher
  omniboot --update all     Forward '--update all' to the launcher
  omniboot fetch            Download the launcher without running it`,
		Args: cobra.ArbitraryArgs,
		// Flag parsing is disabled so flag-shaped launcher arguments reach
		// RunE untouched; splitOwnFlags consumes our own flags instead.
		DisableFlagParsing: true,
		RunE:               runRoot,
	}
)

func init() {
	// Global flags. The root command never parses these itself (see
	// DisableFlagParsing above); they are registered for help output and
	// for subcommands, which parse normally.
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/omniboot/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(fetchCmd)
}

// splitOwnFlags consumes omniboot's own flags from the front of the raw
// argument vector and returns the rest, which belongs to the launcher. The
// first token that is not one of ours, flag-shaped or not, starts the
// forwarded vector and nothing after it is interpreted.
func splitOwnFlags(args []string) (forward []string, showHelp, showVersion bool, err error) {
	i := 0
	for i < len(args) {
		switch a := args[i]; {
		case a == "--verbose" || a == "-v":
			verbose = true
			i++
		case a == "--config":
			if i+1 >= len(args) {
				return nil, false, false, fmt.Errorf("flag needs an argument: --config")
			}
			cfgFile = args[i+1]
			i += 2
		case strings.HasPrefix(a, "--config="):
			cfgFile = strings.TrimPrefix(a, "--config=")
			i++
		case a == "--help" || a == "-h":
			return nil, true, false, nil
		case a == "--version":
			return nil, false, true, nil
		default:
			return args[i:], false, false, nil
		}
	}
	return nil, false, false, nil
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(executeErrorHandler),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// executeErrorHandler keeps fang quiet for *ExitError: those either carry a
// delegated exit code that must pass through silently, or an error that was
// already reported with its issue card. Everything else gets the default
// styled handling.
func executeErrorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// initRootConfig reads in the config file. Called by the run handlers once
// their own flags are settled, since the root command parses none itself.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
