// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toolkit runs the external programs that inspect and rewrite PDFs:
// pdftk for page counts and bookmarks, a page-labeling utility, and the
// in-process pdfcpu backend.
//
// Every invocation is blocking, receives absolute paths, and never changes
// the process working directory.
package toolkit

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/pdiddy/pdfmarks/pkg/types"
)

const defaultTimeout = 2 * time.Minute

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec = &osExecutor{}

// runner invokes external binaries with a per-call timeout and an optional
// fixed-delay retry.
type runner struct {
	exec     executor
	timeout  time.Duration
	attempts uint
	delay    time.Duration
	logger   *slog.Logger
}

func newRunner(exec executor, cfg types.ToolsConfig, logger *slog.Logger) *runner {
	r := &runner{
		exec:     exec,
		timeout:  cfg.Timeout,
		attempts: 1,
		delay:    cfg.RetryDelay,
		logger:   logger,
	}
	if r.timeout <= 0 {
		r.timeout = defaultTimeout
	}
	if cfg.Attempts > 1 {
		r.attempts = uint(cfg.Attempts)
	}
	if r.delay < 0 {
		r.delay = 0
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// run executes name with args and returns its standard output. A failure is
// reported as a *types.ToolError carrying the trimmed standard error.
func (r *runner) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	err := retry.Do(
		func() error {
			stdout.Reset()
			stderr.Reset()

			callCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			start := time.Now()
			r.logger.Debug("running external tool", "tool", name, "args", args)
			err := r.exec.Run(callCtx, name, args, &stdout, &stderr)
			r.logger.Debug("external tool finished", "tool", name, "elapsed", time.Since(start), "err", err)

			if errors.Is(err, exec.ErrNotFound) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(r.attempts),
		retry.Delay(r.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			// Also called after the final attempt.
			if n+1 < r.attempts {
				r.logger.Warn("external tool failed, retrying", "tool", name, "attempt", n+1, "err", err)
			}
		}),
	)
	if err != nil {
		return nil, &types.ToolError{
			Tool:   name,
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.Bytes(), nil
}

// ToolStatus is the outcome of looking up one required binary.
type ToolStatus struct {
	Name string
	Path string
	Err  error
}

// OK reports whether the binary was found.
func (s ToolStatus) OK() bool { return s.Err == nil }

func (r *runner) lookup(names ...string) []ToolStatus {
	out := make([]ToolStatus, 0, len(names))
	for _, n := range names {
		path, err := r.exec.LookPath(n)
		out = append(out, ToolStatus{Name: n, Path: path, Err: err})
	}
	return out
}
