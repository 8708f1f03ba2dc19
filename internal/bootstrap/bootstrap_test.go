// SPDX-License-Identifier: MPL-2.0

package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestBootstrapper_Run_EndToEnd(t *testing.T) {
	interp := writeFakeInterpreter(t, `printf '%s\n' "$@" > "$OMNIBOOT_TEST_OUT"`+"\nexit 3")

	out := filepath.Join(t.TempDir(), "argv.txt")
	t.Setenv("OMNIBOOT_TEST_OUT", out)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(launcherSource)
	}))
	t.Cleanup(srv.Close)

	root := t.TempDir()
	l := NewLauncher()
	l.Interpreter = interp

	b, err := New(
		WithRoot(root),
		WithClient(NewClient(WithURL(srv.URL))),
		WithLauncher(l),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := b.Run(context.Background(), []string{"--lang", "uk"})
	if res.Error != nil {
		t.Fatalf("unexpected error: %v", res.Error)
	}
	if res.ExitCode != 3 {
		t.Errorf("expected delegated exit code 3, got %d", res.ExitCode)
	}

	// The launcher must exist on disk before delegation.
	if _, err := os.Stat(filepath.Join(root, "launcher", "start.py")); err != nil {
		t.Errorf("expected launcher on disk after run: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected delegated process to have run: %v", err)
	}
}

func TestBootstrapper_Run_EnsureFailureSkipsDelegation(t *testing.T) {
	// An interpreter that would leave a marker file if it ever ran.
	interp := writeFakeInterpreter(t, `touch "$OMNIBOOT_TEST_OUT"`)

	marker := filepath.Join(t.TempDir(), "ran")
	t.Setenv("OMNIBOOT_TEST_OUT", marker)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	l := NewLauncher()
	l.Interpreter = interp

	b, err := New(
		WithRoot(t.TempDir()),
		WithClient(NewClient(WithURL(srv.URL))),
		WithLauncher(l),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := b.Run(context.Background(), nil)
	if res.Error == nil {
		t.Fatal("expected error when the fetch fails, got nil")
	}
	if res.ExitCode == 0 {
		t.Error("expected non-zero exit code")
	}

	if _, err := os.Stat(marker); !os.IsNotExist(err) {
		t.Error("delegated process ran despite ensure failure")
	}
}

func TestNew_DefaultRootFromExecutable(t *testing.T) {
	// Not parallel: overrides package-level test seams.
	overrideRootSeams(t, "/opt/omni-trans/omniboot")

	b, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Root() != "/opt/omni-trans" {
		t.Errorf("expected root /opt/omni-trans, got %q", b.Root())
	}
}

func TestNew_RootResolutionError(t *testing.T) {
	// Not parallel: overrides package-level test seams.

	origExec := osExecutable
	t.Cleanup(func() { osExecutable = origExec })
	osExecutable = func() (string, error) {
		return "", os.ErrPermission
	}

	if _, err := New(); err == nil {
		t.Fatal("expected error when the executable path cannot be resolved, got nil")
	}
}
