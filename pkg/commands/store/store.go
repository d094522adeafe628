package store

import (
	"context"

	"github.com/arthur-debert/dots/pkg/core"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/types"
)

// StoreOptions defines the options for the Store command.
type StoreOptions struct {
	Workspace *core.Workspace
	// Packages to store; empty means all.
	Packages []string
	// Message commits the staged files when set.
	Message string
	DryRun  bool
}

// Store adds each package's installed files, and the package directory
// itself, to the bare repository. Files the package would install but that
// are not present are reported rather than failing the command.
func Store(ctx context.Context, opts StoreOptions) (*types.StoreResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Store").Strs("packages", opts.Packages).Msg("Executing command")
	defer logging.LogOperationStart(log, "store")()

	ws := opts.Workspace
	if err := ws.RequireRepo(); err != nil {
		return nil, err
	}

	pkgs, err := ws.Packages(opts.Packages)
	if err != nil {
		return nil, err
	}

	result := &types.StoreResult{DryRun: opts.DryRun}
	var toAdd []string

	for _, pkg := range pkgs {
		files, err := ws.PackageFiles(ctx, pkg)
		if err != nil {
			return nil, err
		}

		ps := types.PackageStore{Name: pkg.Name}
		for _, f := range files {
			if !core.Exists(f) {
				ps.Missing = append(ps.Missing, f)
				continue
			}
			if rel, ok := ws.Paths.HomeRelative(f); ok {
				ps.Stored = append(ps.Stored, rel)
			}
		}
		if rel, ok := ws.Paths.HomeRelative(pkg.Path); ok {
			ps.PackageDir = rel
		}

		if len(ps.Missing) > 0 {
			log.Info().Str("package", pkg.Name).Strs("missing", ps.Missing).Msg("Package files not installed")
		}

		toAdd = append(toAdd, ps.Stored...)
		if ps.PackageDir != "" {
			toAdd = append(toAdd, ps.PackageDir)
		}
		result.Packages = append(result.Packages, ps)
	}

	if opts.DryRun {
		return result, nil
	}

	if err := ws.Repo.Add(ctx, toAdd...); err != nil {
		return nil, err
	}

	if opts.Message != "" && len(toAdd) > 0 {
		if err := ws.Repo.Commit(ctx, opts.Message); err != nil {
			return nil, err
		}
		result.Committed = true
	}

	log.Info().Str("command", "Store").Int("paths", len(toAdd)).Bool("committed", result.Committed).Msg("Command finished")
	return result, nil
}
