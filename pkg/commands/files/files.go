package files

import (
	"context"

	"github.com/arthur-debert/dots/pkg/core"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/types"
)

// FilesOptions defines the options for the Files command.
type FilesOptions struct {
	Workspace *core.Workspace
	// Packages to list; empty means all.
	Packages []string
}

// Files lists the home files each package's install goal produces.
func Files(ctx context.Context, opts FilesOptions) (*types.FilesResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Files").Strs("packages", opts.Packages).Msg("Executing command")
	defer logging.LogOperationStart(log, "files")()

	pkgs, err := opts.Workspace.Packages(opts.Packages)
	if err != nil {
		return nil, err
	}

	result := &types.FilesResult{Packages: make([]types.PackageFiles, 0, len(pkgs))}
	for _, pkg := range pkgs {
		files, err := opts.Workspace.PackageFiles(ctx, pkg)
		if err != nil {
			return nil, err
		}
		result.Packages = append(result.Packages, types.PackageFiles{
			Name:  pkg.Name,
			Path:  pkg.Path,
			Files: files,
		})
	}

	log.Info().Str("command", "Files").Int("fileCount", len(result.AllFiles())).Msg("Command finished")
	return result, nil
}
