package build

import (
	"context"
	"io"

	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/runner"
	"github.com/rs/zerolog"
)

// Builder runs a package's build rules
type Builder struct {
	runner runner.Runner
	bin    string
	home   string
	target string
	logger zerolog.Logger
}

// New creates a Builder. bin is the make executable, home the install
// root passed to make as HOME, and target the goal to build.
func New(r runner.Runner, bin, home, target string) *Builder {
	return &Builder{
		runner: r,
		bin:    bin,
		home:   home,
		target: target,
		logger: logging.GetLogger("build"),
	}
}

// Files returns the absolute files the package's goal would install,
// sorted and without duplicates. Directory targets are left out.
func (b *Builder) Files(ctx context.Context, pkgDir string) ([]string, error) {
	out, err := b.runner.Output(ctx, b.command(pkgDir,
		"--dry-run", "--always-make", "--debug=b"))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrToolFailed, "dry run failed in %s", pkgDir).
			WithDetail("package", pkgDir)
	}

	files, dirs := DropDirectories(FilterTargets(ParseRemadeTargets(out), pkgDir, b.home))
	if len(dirs) > 0 {
		b.logger.Debug().Str("package", pkgDir).Strs("directories", dirs).Msg("Skipped directory targets")
	}

	b.logger.Debug().
		Str("package", pkgDir).
		Int("files", len(files)).
		Msg("Listed package files")

	return files, nil
}

// Install builds the package's goal, streaming make's output
func (b *Builder) Install(ctx context.Context, pkgDir string, stdout, stderr io.Writer) error {
	cmd := b.command(pkgDir)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	b.logger.Info().Str("package", pkgDir).Str("target", b.target).Msg("Installing package")

	if err := b.runner.Run(ctx, cmd); err != nil {
		return errors.Wrapf(err, errors.ErrToolFailed, "install failed in %s", pkgDir).
			WithDetail("package", pkgDir)
	}
	return nil
}

// command builds the make invocation; flags go before the variable and goal
func (b *Builder) command(pkgDir string, flags ...string) runner.Command {
	args := []string{"--no-print-directory", "-C", pkgDir}
	args = append(args, flags...)
	args = append(args, "HOME="+b.home, b.target)

	return runner.Command{
		Name: b.bin,
		Args: args,
		Env: []string{
			"DOTS_HOME=" + b.home,
			"DOTS_PACKAGE=" + pkgDir,
		},
	}
}
