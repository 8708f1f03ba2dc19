// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/Ner-Kun/omniboot/internal/bootstrap"
	"github.com/Ner-Kun/omniboot/internal/config"
	"github.com/Ner-Kun/omniboot/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runRoot ensures the launcher exists, then delegates to it with the raw
// argument vector forwarded as-is, omniboot's own leading flags excepted.
// The launcher's exit code becomes the process exit code via ExitError.
func runRoot(cmd *cobra.Command, args []string) error {
	forward, showHelp, showVersion, err := splitOwnFlags(args)
	if err != nil {
		return err
	}
	if showHelp {
		return cmd.Help()
	}
	if showVersion {
		fmt.Println(getVersionString())
		return nil
	}

	initRootConfig()

	b, err := newBootstrapper()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("Error:"), err)
		return &ExitError{Code: ExitEnsureFailed, Err: err}
	}

	result := b.Run(cmd.Context(), forward)
	if result.Error != nil {
		reportBootstrapError(result.Error)
		return &ExitError{Code: exitCodeFor(result.Error), Err: result.Error}
	}

	if result.ExitCode != 0 {
		if verbose {
			fmt.Fprintf(os.Stderr, "%s launcher exited with code %d\n", WarningStyle.Render("!"), result.ExitCode)
		}
		return &ExitError{Code: result.ExitCode}
	}

	return nil
}

// newBootstrapper wires config into a Bootstrapper. A broken config file was
// already reported during initialization, so defaults apply here.
func newBootstrapper(opts ...bootstrap.Option) (*bootstrap.Bootstrapper, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	launcher := bootstrap.NewLauncher()
	launcher.Interpreter = cfg.Interpreter.Path

	opts = append(opts,
		bootstrap.WithClient(bootstrap.NewClient(bootstrap.WithTimeout(cfg.Network.Timeout()))),
		bootstrap.WithLauncher(launcher),
		bootstrap.WithLogger(newLogger()),
	)
	return bootstrap.New(opts...)
}

// newLogger builds the diagnostics logger. Debug output only appears in
// verbose mode; stdout stays reserved for the delegated launcher.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "omniboot",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// reportBootstrapError renders the issue card matching err, if any, followed
// by the error itself.
func reportBootstrapError(err error) {
	if is := issueFor(err); is != nil {
		rendered, _ := is.Render("dark")
		fmt.Fprint(os.Stderr, rendered)
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
}

// issueFor maps a bootstrap error to its guidance card. Returns nil when no
// card applies.
func issueFor(err error) *issue.Issue {
	var (
		dirErr   *bootstrap.DirCreateError
		fetchErr *bootstrap.FetchError
		writeErr *bootstrap.WriteError
	)
	switch {
	case errors.Is(err, bootstrap.ErrInterpreterNotFound):
		return issue.Get(issue.InterpreterNotFoundId)
	case errors.As(err, &dirErr):
		return issue.Get(issue.LauncherDirFailedId)
	case errors.As(err, &writeErr):
		return issue.Get(issue.LauncherWriteFailedId)
	case errors.As(err, &fetchErr):
		return issue.Get(issue.LauncherFetchFailedId)
	}
	return nil
}

// exitCodeFor distinguishes "could not get the launcher" from "could not
// start the interpreter". Both phases exit without a delegated code to
// mirror, so each gets its own.
func exitCodeFor(err error) int {
	var launchErr *bootstrap.LaunchError
	if errors.As(err, &launchErr) {
		return ExitLaunchFailed
	}
	return ExitEnsureFailed
}
