package install

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/arthur-debert/dots/pkg/core"
	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/packages"
	"github.com/arthur-debert/dots/pkg/types"
)

// InstallOptions defines the options for the Install command.
type InstallOptions struct {
	Workspace *core.Workspace
	// Packages to install; empty means all.
	Packages []string
	// Force installs over untracked files.
	Force  bool
	DryRun bool
	// Stdout and Stderr receive make's output. Warnings go to Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Warn formats a warning line; the default writes "warning: <msg>".
	Warn func(w io.Writer, msg string)
}

// Install runs each package's install goal after checking that none of
// the files it would write already exist untracked in the home directory.
func Install(ctx context.Context, opts InstallOptions) (*types.InstallResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Install").Strs("packages", opts.Packages).
		Bool("force", opts.Force).Bool("dryRun", opts.DryRun).Msg("Executing command")
	defer logging.LogOperationStart(log, "install")()

	ws := opts.Workspace
	if err := ws.RequireRepo(); err != nil {
		return nil, err
	}

	pkgs, err := ws.Packages(opts.Packages)
	if err != nil {
		return nil, err
	}

	result, err := check(ctx, ws, pkgs)
	if err != nil {
		return nil, err
	}
	result.DryRun = opts.DryRun
	result.Packages = packages.Names(pkgs)

	warn := opts.Warn
	if warn == nil {
		warn = plainWarning
	}
	for _, c := range result.Modified {
		warn(opts.Stderr, fmt.Sprintf("%s: %s has uncommitted changes", c.Package, c.Path))
	}
	if !opts.Force {
		for _, c := range result.Conflicts {
			warn(opts.Stderr, fmt.Sprintf("%s: %s exists and is not tracked", c.Package, c.Path))
		}
		if len(result.Conflicts) > 0 {
			return result, errors.Newf(errors.ErrUntrackedConflict,
				"%d untracked file(s) would be overwritten, store them or use --force", len(result.Conflicts)).
				WithDetail("conflicts", result.Conflicts)
		}
	}

	if opts.DryRun {
		return result, nil
	}

	for _, pkg := range pkgs {
		if err := ws.Builder.Install(ctx, pkg.Path, opts.Stdout, opts.Stderr); err != nil {
			return result, err
		}
		result.Installed = append(result.Installed, pkg.Name)
	}

	log.Info().Str("command", "Install").Strs("installed", result.Installed).Msg("Command finished")
	return result, nil
}

// check classifies every file the packages would install against the
// repository: present but untracked is a conflict, tracked with local
// changes is reported as modified. A tracked file deleted from home is
// neither; installing restores it.
func check(ctx context.Context, ws *core.Workspace, pkgs []packages.Package) (*types.InstallResult, error) {
	tracked, err := ws.TrackedSet(ctx)
	if err != nil {
		return nil, err
	}

	result := &types.InstallResult{}
	var trackedRels []string
	owner := make(map[string]string)

	for _, pkg := range pkgs {
		files, err := ws.PackageFiles(ctx, pkg)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			rel, ok := ws.Paths.HomeRelative(f)
			if !ok {
				continue
			}
			if tracked[rel] {
				trackedRels = append(trackedRels, rel)
				owner[rel] = pkg.Name
				continue
			}
			if core.Exists(f) {
				result.Conflicts = append(result.Conflicts, types.Conflict{Package: pkg.Name, Path: f})
			}
		}
	}

	changes, err := ws.Changes(ctx, trackedRels)
	if err != nil {
		return nil, err
	}
	for _, rel := range trackedRels {
		if changes.Modified(rel) && !changes.Deleted(rel) {
			result.Modified = append(result.Modified, types.Conflict{
				Package: owner[rel],
				Path:    filepath.Join(ws.Paths.Home(), rel),
			})
		}
	}
	return result, nil
}

func plainWarning(w io.Writer, msg string) {
	if w == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "warning: %s\n", msg)
}
