// SPDX-License-Identifier: MPL-2.0

package bootstrap

import (
	"fmt"
	"strings"
	"testing"
)

// overrideRootSeams saves and restores the osExecutable and evalSymlinks test
// seams, setting them to return the given executable path. Cleanup is
// registered automatically.
func overrideRootSeams(t *testing.T, path string) {
	t.Helper()

	origExec := osExecutable
	origSymlinks := evalSymlinks
	t.Cleanup(func() {
		osExecutable = origExec
		evalSymlinks = origSymlinks
	})

	osExecutable = func() (string, error) { return path, nil }
	evalSymlinks = func(p string) (string, error) { return p, nil }
}

func TestRootDir_ReturnsExecutableDir(t *testing.T) {
	// Not parallel: overrides package-level test seams.
	overrideRootSeams(t, "/opt/omni-trans/omniboot")

	dir, err := RootDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/opt/omni-trans" {
		t.Errorf("expected /opt/omni-trans, got %q", dir)
	}
}

func TestRootDir_ResolvesSymlinks(t *testing.T) {
	// Not parallel: overrides package-level test seams.

	origExec := osExecutable
	origSymlinks := evalSymlinks
	t.Cleanup(func() {
		osExecutable = origExec
		evalSymlinks = origSymlinks
	})

	osExecutable = func() (string, error) { return "/usr/local/bin/omniboot", nil }
	evalSymlinks = func(_ string) (string, error) { return "/opt/omni-trans/omniboot", nil }

	dir, err := RootDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/opt/omni-trans" {
		t.Errorf("expected symlink-resolved dir /opt/omni-trans, got %q", dir)
	}
}

func TestRootDir_OsExecutableError(t *testing.T) {
	// Not parallel: overrides package-level test seams.

	origExec := osExecutable
	origSymlinks := evalSymlinks
	t.Cleanup(func() {
		osExecutable = origExec
		evalSymlinks = origSymlinks
	})

	osExecutable = func() (string, error) {
		return "", fmt.Errorf("injected os.Executable error")
	}
	evalSymlinks = func(p string) (string, error) { return p, nil }

	_, err := RootDir()
	if err == nil {
		t.Fatal("expected error from os.Executable failure, got nil")
	}
	if !strings.Contains(err.Error(), "determining executable path") {
		t.Errorf("expected 'determining executable path' context, got: %v", err)
	}
}

func TestRootDir_EvalSymlinksError(t *testing.T) {
	// Not parallel: overrides package-level test seams.

	origExec := osExecutable
	origSymlinks := evalSymlinks
	t.Cleanup(func() {
		osExecutable = origExec
		evalSymlinks = origSymlinks
	})

	osExecutable = func() (string, error) { return "/usr/local/bin/omniboot", nil }
	evalSymlinks = func(_ string) (string, error) {
		return "", fmt.Errorf("injected EvalSymlinks error")
	}

	_, err := RootDir()
	if err == nil {
		t.Fatal("expected error from EvalSymlinks failure, got nil")
	}
	if !strings.Contains(err.Error(), "resolving symlinks") {
		t.Errorf("expected 'resolving symlinks' context, got: %v", err)
	}
}
