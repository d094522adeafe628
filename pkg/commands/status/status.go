package status

import (
	"context"

	"github.com/arthur-debert/dots/pkg/core"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/types"
)

// StatusOptions defines the options for the Status command.
type StatusOptions struct {
	Workspace *core.Workspace
	// Packages to inspect; empty means all.
	Packages []string
}

// Status reports the tracking state of every file each package installs.
func Status(ctx context.Context, opts StatusOptions) (*types.StatusResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Status").Strs("packages", opts.Packages).Msg("Executing command")
	defer logging.LogOperationStart(log, "status")()

	ws := opts.Workspace
	if err := ws.RequireRepo(); err != nil {
		return nil, err
	}

	pkgs, err := ws.Packages(opts.Packages)
	if err != nil {
		return nil, err
	}

	tracked, err := ws.TrackedSet(ctx)
	if err != nil {
		return nil, err
	}

	result := &types.StatusResult{Packages: make([]types.PackageStatus, 0, len(pkgs))}
	for _, pkg := range pkgs {
		files, err := ws.PackageFiles(ctx, pkg)
		if err != nil {
			return nil, err
		}

		var trackedRels []string
		for _, rel := range ws.Paths.HomeRelativeAll(files) {
			if tracked[rel] {
				trackedRels = append(trackedRels, rel)
			}
		}
		changes, err := ws.Changes(ctx, trackedRels)
		if err != nil {
			return nil, err
		}

		ps := types.PackageStatus{Name: pkg.Name, Files: make([]types.FileStatus, 0, len(files))}
		for _, f := range files {
			rel, _ := ws.Paths.HomeRelative(f)
			ps.Files = append(ps.Files, types.FileStatus{
				Path:  f,
				State: fileState(tracked[rel], changes.Modified(rel), changes.Deleted(rel) || !core.Exists(f)),
			})
		}
		result.Packages = append(result.Packages, ps)
	}

	log.Info().Str("command", "Status").Int("packageCount", len(result.Packages)).Msg("Command finished")
	return result, nil
}

func fileState(tracked, modified, gone bool) types.FileState {
	switch {
	case tracked && gone:
		return types.FileDeleted
	case tracked && modified:
		return types.FileModified
	case tracked:
		return types.FileTracked
	case !gone:
		return types.FileUntracked
	default:
		return types.FileMissing
	}
}
