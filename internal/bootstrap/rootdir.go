// SPDX-License-Identifier: MPL-2.0

package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
)

var (
	//nolint:gochecknoglobals // Test seam for os.Executable().
	osExecutable = os.Executable

	//nolint:gochecknoglobals // Test seam for filepath.EvalSymlinks().
	evalSymlinks = filepath.EvalSymlinks
)

// RootDir returns the directory containing the running executable with
// symlinks resolved. All launcher paths are relative to this directory, not
// to the caller's working directory, so a symlinked or PATH-looked-up
// omniboot still finds its own install tree.
func RootDir() (string, error) {
	p, err := osExecutable()
	if err != nil {
		return "", fmt.Errorf("determining executable path: %w", err)
	}

	resolved, err := evalSymlinks(p)
	if err != nil {
		return "", fmt.Errorf("resolving symlinks for %s: %w", p, err)
	}

	return filepath.Dir(resolved), nil
}
