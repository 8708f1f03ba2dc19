// SPDX-License-Identifier: MPL-2.0

package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// LauncherDirName is the directory holding the launcher, relative to the
	// install root.
	LauncherDirName = "launcher"

	// LauncherFileName is the launcher entry point inside LauncherDirName.
	LauncherFileName = "start.py"

	// maxLauncherBytes is the upper bound on the fetched launcher size
	// (32 MB). The real script is a few tens of kilobytes; anything near the
	// cap means the fetch went to the wrong place.
	maxLauncherBytes = 32 << 20
)

type (
	// EnsureResult reports the outcome of a successful Ensure call.
	EnsureResult struct {
		Path    string // Absolute path to launcher/start.py
		Fetched bool   // True if a download happened this run
	}

	// Ensurer guarantees the launcher file exists under the install root.
	// Existence alone is the gate: a present file is never overwritten,
	// revalidated, or checksummed.
	Ensurer struct {
		root   string
		client *Client
	}
)

// NewEnsurer creates an Ensurer for the given install root.
func NewEnsurer(root string, client *Client) *Ensurer {
	return &Ensurer{root: root, client: client}
}

// LauncherPath returns the path the launcher lives (or will live) at.
func (e *Ensurer) LauncherPath() string {
	return filepath.Join(e.root, LauncherDirName, LauncherFileName)
}

// Ensure checks for launcher/start.py under the root and downloads it when
// absent. The download streams to a temp file in the launcher directory and
// is renamed onto the final path, so start.py is always atomic-or-absent:
// a failed or interrupted fetch leaves no partial file behind.
//
// Two concurrent first runs may both fetch; each renames its own temp file
// and the last rename wins. No locking is attempted.
func (e *Ensurer) Ensure(ctx context.Context) (*EnsureResult, error) {
	path := e.LauncherPath()

	if fileExists(path) {
		return &EnsureResult{Path: path}, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &DirCreateError{Path: dir, Cause: err}
	}

	body, err := e.client.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }() // read-only HTTP response body

	if err := writeLauncher(dir, path, body); err != nil {
		return nil, err
	}

	return &EnsureResult{Path: path, Fetched: true}, nil
}

// writeLauncher streams body into a temp file in dir and renames it onto
// path. The rename is atomic because the temp file lives on the same
// filesystem as the target. Any failure removes the temp file.
func writeLauncher(dir, path string, body io.Reader) error {
	tmp, err := os.CreateTemp(dir, "start-*.py.tmp")
	if err != nil {
		return &WriteError{Path: path, Cause: err}
	}

	n, err := io.Copy(tmp, io.LimitReader(body, maxLauncherBytes+1))
	if err == nil && n > maxLauncherBytes {
		err = fmt.Errorf("response exceeds %d bytes", maxLauncherBytes)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return &WriteError{Path: path, Cause: err}
	}

	// The launcher is read by the interpreter, never executed directly.
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return &WriteError{Path: path, Cause: err}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return &WriteError{Path: path, Cause: err}
	}

	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
