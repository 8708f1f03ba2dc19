// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

// Exit codes reserved for bootstrap failures. Anything else flowing out of
// the process is the launcher's own exit code, passed through untouched.
const (
	// ExitEnsureFailed means launcher/start.py could not be obtained, so no
	// process was ever spawned.
	ExitEnsureFailed = 125
	// ExitLaunchFailed means the Python interpreter was missing or failed to
	// start, following the shell convention for "command not found".
	ExitLaunchFailed = 127
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
