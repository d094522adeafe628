package initialize

import (
	"context"
	"os"

	"github.com/arthur-debert/dots/pkg/core"
	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/types"
)

// InitOptions defines the options for the Init command.
type InitOptions struct {
	Workspace *core.Workspace
	// DryRun reports what would be created without touching anything.
	DryRun bool
}

// Init creates the dotfiles directory and the bare repository. An existing
// repository is left alone.
func Init(ctx context.Context, opts InitOptions) (*types.InitResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Init").Bool("dryRun", opts.DryRun).Msg("Executing command")

	p := opts.Workspace.Paths
	result := &types.InitResult{
		DotfilesDir: p.DotfilesDir(),
		GitDir:      p.GitDir(),
		DryRun:      opts.DryRun,
	}

	if info, err := os.Stat(p.DotfilesDir()); err == nil {
		if !info.IsDir() {
			return nil, errors.New(errors.ErrInvalidInput, "dotfiles path exists and is not a directory").
				WithDetail("path", p.DotfilesDir())
		}
	} else {
		result.CreatedDotfilesDir = true
		if !opts.DryRun {
			if err := os.MkdirAll(p.DotfilesDir(), 0755); err != nil {
				return nil, errors.Wrap(err, errors.ErrDirCreate, "failed to create dotfiles directory").
					WithDetail("path", p.DotfilesDir())
			}
		}
	}

	if opts.Workspace.Repo.Exists() {
		log.Info().Str("git_dir", p.GitDir()).Msg("Repository already initialized")
		return result, nil
	}

	result.CreatedRepo = true
	if !opts.DryRun {
		if err := opts.Workspace.Repo.Init(ctx); err != nil {
			return nil, err
		}
	}

	log.Info().Str("command", "Init").
		Bool("createdDotfilesDir", result.CreatedDotfilesDir).
		Bool("createdRepo", result.CreatedRepo).
		Msg("Command finished")
	return result, nil
}
