package gitexec

import (
	"context"
	"io"

	"github.com/arthur-debert/dots/pkg/core"
	"github.com/arthur-debert/dots/pkg/logging"
)

// GitOptions defines the options for the Git command.
type GitOptions struct {
	Workspace *core.Workspace
	// Args are handed to git unchanged.
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Git runs git against the bare repository with the home directory as its
// work tree. A failing git surfaces as an error carrying git's exit status.
func Git(ctx context.Context, opts GitOptions) error {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Git").Strs("args", opts.Args).Msg("Executing command")

	if err := opts.Workspace.RequireRepo(); err != nil {
		return err
	}
	return opts.Workspace.Repo.Exec(ctx, opts.Args, opts.Stdin, opts.Stdout, opts.Stderr)
}
