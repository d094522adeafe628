package runner

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/rs/zerolog"
)

// Command describes a single external process invocation
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one
	Dir string
	// Env entries are appended to the current environment
	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command line for logs and dry-run output
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner runs external commands
type Runner interface {
	// Run executes the command with the configured stdio
	Run(ctx context.Context, cmd Command) error
	// Output executes the command and returns its stdout
	Output(ctx context.Context, cmd Command) ([]byte, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	logger zerolog.Logger
}

// NewExecRunner creates a runner backed by os/exec
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		logger: logging.GetLogger("runner"),
	}
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := r.build(ctx, c)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Run(); err != nil {
		return r.failure(c, err, "")
	}
	return nil
}

// Output implements Runner
func (r *ExecRunner) Output(ctx context.Context, c Command) ([]byte, error) {
	cmd := r.build(ctx, c)
	cmd.Stdin = c.Stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if c.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&stderr, c.Stderr)
	}

	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), r.failure(c, err, stderr.String())
	}

	r.logger.Trace().
		Str("command", c.Name).
		Int("bytes", stdout.Len()).
		Msg("Command output captured")

	return stdout.Bytes(), nil
}

func (r *ExecRunner) build(ctx context.Context, c Command) *exec.Cmd {
	logging.LogCommand(r.logger, c.Name, c.Args)

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	return cmd
}

func (r *ExecRunner) failure(c Command, err error, stderr string) error {
	r.logger.Debug().
		Err(err).
		Str("command", c.Name).
		Strs("args", c.Args).
		Str("stderr", stderr).
		Msg("Command execution failed")

	if stderr = strings.TrimSpace(stderr); stderr != "" {
		return errors.Wrapf(err, errors.ErrToolFailed, "%s: %s", c.Name, stderr).
			WithDetail("args", c.Args)
	}
	return errors.Wrapf(err, errors.ErrToolFailed, "%s failed", c.Name).
		WithDetail("args", c.Args)
}
