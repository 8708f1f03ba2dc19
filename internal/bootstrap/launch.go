// SPDX-License-Identifier: MPL-2.0

package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

type (
	// Launcher spawns the Python interpreter on the launcher script with the
	// forwarded arguments. Arguments travel as a discrete argv vector; they
	// are never joined into a shell string.
	Launcher struct {
		// Interpreter overrides the platform interpreter lookup.
		Interpreter string

		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// Result is the outcome of a delegation attempt. Error is set only when
	// the launcher never started; once it runs, its exit code is reported
	// here uninterpreted.
	Result struct {
		ExitCode int
		Error    error
	}
)

// NewLauncher creates a Launcher wired to the process's own stdio.
func NewLauncher() *Launcher {
	return &Launcher{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Launch runs the interpreter on script, passing args through unmodified and
// in order. The Result carries the delegated exit code, or a *LaunchError
// when the interpreter is missing or fails to start.
func (l *Launcher) Launch(ctx context.Context, script string, args []string) *Result {
	interp, err := l.findInterpreter()
	if err != nil {
		return &Result{ExitCode: 1, Error: &LaunchError{Cause: err}}
	}

	argv := append([]string{script}, args...)
	cmd := exec.CommandContext(ctx, interp, argv...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &Result{ExitCode: exitErr.ExitCode()}
		}
		return &Result{ExitCode: 1, Error: &LaunchError{Interpreter: interp, Cause: err}}
	}

	return &Result{ExitCode: 0}
}

// findInterpreter determines which Python interpreter to use.
func (l *Launcher) findInterpreter() (string, error) {
	// Use configured interpreter if set.
	if l.Interpreter != "" {
		return l.Interpreter, nil
	}

	var candidates []string
	switch runtime.GOOS {
	case "windows":
		// The py launcher ships with the official installer; plain python
		// covers Store and PATH installs.
		candidates = []string{"py", "python", "python3"}
	default:
		candidates = []string{"python3", "python"}
	}

	for _, name := range candidates {
		if p, err := exec.LookPath(name); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w (tried %s)", ErrInterpreterNotFound, strings.Join(candidates, ", "))
}
