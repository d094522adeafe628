package git

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/runner"
	"github.com/rs/zerolog"
)

// Repo is a bare repository bound to a work tree
type Repo struct {
	runner   runner.Runner
	bin      string
	gitDir   string
	workTree string
	logger   zerolog.Logger
}

// New creates a Repo. bin is the git executable.
func New(r runner.Runner, bin, gitDir, workTree string) *Repo {
	return &Repo{
		runner:   r,
		bin:      bin,
		gitDir:   gitDir,
		workTree: workTree,
		logger:   logging.GetLogger("git"),
	}
}

// GitDir returns the bare repository directory
func (r *Repo) GitDir() string { return r.gitDir }

// WorkTree returns the work tree root
func (r *Repo) WorkTree() string { return r.workTree }

// Exists reports whether the bare repository has been initialized
func (r *Repo) Exists() bool {
	_, err := os.Stat(filepath.Join(r.gitDir, "HEAD"))
	return err == nil
}

// Init creates the bare repository and hides untracked files from status
func (r *Repo) Init(ctx context.Context) error {
	r.logger.Info().Str("git_dir", r.gitDir).Msg("Initializing bare repository")

	if _, err := r.runner.Output(ctx, runner.Command{
		Name: r.bin,
		Args: []string{"init", "--quiet", "--bare", r.gitDir},
	}); err != nil {
		return errors.Wrapf(err, errors.ErrToolFailed, "failed to initialize %s", r.gitDir)
	}

	if _, err := r.output(ctx, "config", "status.showUntrackedFiles", "no"); err != nil {
		return errors.Wrap(err, errors.ErrToolFailed, "failed to configure repository")
	}
	return nil
}

// Exec runs git with args against the repository, passing stdio through.
// It runs in the caller's working directory so relative paths behave as
// they would with plain git.
func (r *Repo) Exec(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := r.command(args...)
	cmd.Dir = ""
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return r.runner.Run(ctx, cmd)
}

// TrackedFiles lists every file in the index, relative to the work tree
func (r *Repo) TrackedFiles(ctx context.Context) ([]string, error) {
	out, err := r.output(ctx, "ls-files", "-z", "--full-name")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrToolFailed, "failed to list tracked files")
	}
	return splitNul(out), nil
}

// Status returns porcelain status entries, untracked files included,
// limited to paths when given.
func (r *Repo) Status(ctx context.Context, paths ...string) ([]StatusEntry, error) {
	args := []string{"status", "--porcelain", "-z", "--untracked-files=all"}
	if len(paths) > 0 {
		args = append(append(args, "--"), paths...)
	}
	out, err := r.output(ctx, args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrToolFailed, "failed to read repository status")
	}
	return ParseStatus(out)
}

// IsClean reports whether tracked files have no staged or unstaged changes
func (r *Repo) IsClean(ctx context.Context) (bool, error) {
	out, err := r.output(ctx, "status", "--porcelain", "-z", "--untracked-files=no")
	if err != nil {
		return false, errors.Wrap(err, errors.ErrToolFailed, "failed to read repository status")
	}
	return len(bytes.TrimSpace(out)) == 0, nil
}

// Add stages paths (relative to the work tree). Force is required since
// the work tree is a home directory and may carry ignore rules.
func (r *Repo) Add(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--force", "--"}, paths...)
	if _, err := r.output(ctx, args...); err != nil {
		return errors.Wrap(err, errors.ErrToolFailed, "failed to add files").
			WithDetail("paths", paths)
	}
	return nil
}

// Commit records the staged changes
func (r *Repo) Commit(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return errors.New(errors.ErrInvalidInput, "commit message cannot be empty")
	}
	if _, err := r.output(ctx, "commit", "--quiet", "-m", message); err != nil {
		return errors.Wrap(err, errors.ErrToolFailed, "failed to commit")
	}
	return nil
}

func (r *Repo) command(args ...string) runner.Command {
	return runner.Command{
		Name: r.bin,
		Args: append([]string{"--git-dir=" + r.gitDir, "--work-tree=" + r.workTree}, args...),
		Dir:  r.workTree,
	}
}

func (r *Repo) output(ctx context.Context, args ...string) ([]byte, error) {
	return r.runner.Output(ctx, r.command(args...))
}

func splitNul(out []byte) []string {
	var files []string
	for _, f := range strings.Split(string(out), "\x00") {
		if f = strings.TrimRight(f, "\n"); f != "" {
			files = append(files, f)
		}
	}
	return files
}
