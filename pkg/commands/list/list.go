package list

import (
	"github.com/arthur-debert/dots/pkg/core"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/types"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	Workspace *core.Workspace
}

// List finds all packages in the dotfiles directory.
func List(opts ListOptions) (*types.ListPackagesResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "List").Msg("Executing command")

	pkgs, err := opts.Workspace.Packages(nil)
	if err != nil {
		return nil, err
	}

	result := &types.ListPackagesResult{
		Packages: make([]types.PackageInfo, len(pkgs)),
	}
	for i, p := range pkgs {
		result.Packages[i] = types.PackageInfo{Name: p.Name, Path: p.Path}
	}

	log.Info().Str("command", "List").Int("packageCount", len(result.Packages)).Msg("Command finished")
	return result, nil
}
