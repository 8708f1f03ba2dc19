// SPDX-License-Identifier: MPL-2.0

package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

type (
	// Bootstrapper composes root resolution, launcher ensure, and delegation
	// into the linear flow behind the CLI. It is the primary facade for the
	// bootstrap package.
	Bootstrapper struct {
		root     string
		client   *Client
		ensurer  *Ensurer
		launcher *Launcher
		logger   *log.Logger
	}

	// Option configures a Bootstrapper during construction.
	Option func(*Bootstrapper)
)

// WithRoot overrides install root resolution, primarily for tests.
func WithRoot(root string) Option {
	return func(b *Bootstrapper) {
		b.root = root
	}
}

// WithClient overrides the default fetch client.
func WithClient(c *Client) Option {
	return func(b *Bootstrapper) {
		b.client = c
	}
}

// WithLauncher overrides the default Launcher.
func WithLauncher(l *Launcher) Option {
	return func(b *Bootstrapper) {
		b.launcher = l
	}
}

// WithLogger sets the logger for phase diagnostics. Without it the
// Bootstrapper is silent; stdout and stderr belong to the delegated process.
func WithLogger(lg *log.Logger) Option {
	return func(b *Bootstrapper) {
		b.logger = lg
	}
}

// New creates a Bootstrapper. Unless overridden, the install root is the
// directory of the running executable and the fetch client targets the
// canonical launcher URL.
func New(opts ...Option) (*Bootstrapper, error) {
	b := &Bootstrapper{}
	for _, opt := range opts {
		opt(b)
	}

	if b.root == "" {
		root, err := RootDir()
		if err != nil {
			return nil, fmt.Errorf("resolving install root: %w", err)
		}
		b.root = root
	}
	if b.client == nil {
		b.client = NewClient()
	}
	if b.launcher == nil {
		b.launcher = NewLauncher()
	}
	if b.logger == nil {
		b.logger = log.New(io.Discard)
	}
	b.ensurer = NewEnsurer(b.root, b.client)

	return b, nil
}

// Root returns the resolved install root.
func (b *Bootstrapper) Root() string {
	return b.root
}

// EnsureLauncher makes sure launcher/start.py exists under the install root,
// downloading it when absent. See Ensurer.Ensure for the atomicity contract.
func (b *Bootstrapper) EnsureLauncher(ctx context.Context) (*EnsureResult, error) {
	b.logger.Debug("ensuring launcher", "root", b.root, "url", b.client.LauncherURL())

	res, err := b.ensurer.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	if res.Fetched {
		b.logger.Debug("launcher downloaded", "path", res.Path)
	} else {
		b.logger.Debug("launcher already present, skipping fetch", "path", res.Path)
	}

	return res, nil
}

// Run executes the whole flow: ensure the launcher, then delegate to it with
// the forwarded arguments. Ensure failures surface in Result.Error and no
// process is spawned; once delegation starts, the launcher's exit code is
// mirrored without interpretation.
func (b *Bootstrapper) Run(ctx context.Context, args []string) *Result {
	res, err := b.EnsureLauncher(ctx)
	if err != nil {
		return &Result{ExitCode: 1, Error: err}
	}

	b.logger.Debug("delegating to launcher", "path", res.Path, "args", len(args))
	return b.launcher.Launch(ctx, res.Path, args)
}
