// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// fetchCmd downloads the launcher without running it, for pre-seeding an
// install before going offline.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the launcher script without running it",
	Long: `Make sure 'launcher/start.py' exists next to the omniboot binary,
downloading it when absent. An existing file is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, _ []string) error {
	initRootConfig()

	b, err := newBootstrapper()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("Error:"), err)
		return &ExitError{Code: ExitEnsureFailed, Err: err}
	}

	res, err := b.EnsureLauncher(cmd.Context())
	if err != nil {
		reportBootstrapError(err)
		return &ExitError{Code: ExitEnsureFailed, Err: err}
	}

	if res.Fetched {
		fmt.Printf("%s Downloaded launcher to %s\n", SuccessStyle.Render("✓"), res.Path)
	} else {
		fmt.Printf("%s Launcher already present at %s\n", SuccessStyle.Render("✓"), res.Path)
	}
	return nil
}
