// SPDX-License-Identifier: MPL-2.0

package bootstrap

import (
	"errors"
	"fmt"
)

// ErrInterpreterNotFound is the sentinel wrapped by LaunchError when no
// Python interpreter could be located on the system.
var ErrInterpreterNotFound = errors.New("python interpreter not found")

type (
	// DirCreateError is returned when the launcher directory cannot be created.
	DirCreateError struct {
		Path  string
		Cause error
	}

	// FetchError is returned when the launcher download fails: a transport
	// error (Cause set, Status zero) or a non-2xx response (Status set).
	FetchError struct {
		URL    string
		Status int
		Cause  error
	}

	// WriteError is returned when the fetched launcher cannot be written to
	// disk. By the time it is returned any partially written temp file has
	// been removed.
	WriteError struct {
		Path  string
		Cause error
	}

	// LaunchError is returned when the interpreter cannot be found or the
	// delegated process fails to start. Errors from a launcher that did
	// start are never wrapped in it; its exit code passes through instead.
	LaunchError struct {
		Interpreter string
		Cause       error
	}
)

// Error implements the error interface.
func (e *DirCreateError) Error() string {
	return fmt.Sprintf("creating launcher directory %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *DirCreateError) Unwrap() error { return e.Cause }

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching launcher from %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetching launcher from %s: %v", e.URL, e.Cause)
}

// Unwrap returns the underlying cause, if any.
func (e *FetchError) Unwrap() error { return e.Cause }

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("writing launcher to %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *WriteError) Unwrap() error { return e.Cause }

// Error implements the error interface.
func (e *LaunchError) Error() string {
	if e.Interpreter != "" {
		return fmt.Sprintf("starting launcher with %s: %v", e.Interpreter, e.Cause)
	}
	return fmt.Sprintf("starting launcher: %v", e.Cause)
}

// Unwrap returns the underlying cause so callers can detect
// ErrInterpreterNotFound with errors.Is.
func (e *LaunchError) Unwrap() error { return e.Cause }
