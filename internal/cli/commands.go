package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dots/internal/version"
	"github.com/arthur-debert/dots/pkg/commands"
	"github.com/arthur-debert/dots/pkg/config"
	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/packages"
	"github.com/arthur-debert/dots/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Long:  MsgInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.workspace()
			if err != nil {
				return err
			}
			result, err := commands.Init(cmd.Context(), commands.InitOptions{
				Workspace: ws,
				DryRun:    opts.dryRun,
			})
			if err != nil {
				return err
			}
			return opts.render(cmd, result)
		},
	}
}

func newGitCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:                "git [args...]",
		Short:              MsgGitShort,
		Long:               MsgGitLong,
		Example:            MsgGitExample,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.workspace()
			if err != nil {
				return err
			}
			err = commands.Git(cmd.Context(), commands.GitOptions{
				Workspace: ws,
				Args:      args,
				Stdin:     cmd.InOrStdin(),
				Stdout:    cmd.OutOrStdout(),
				Stderr:    cmd.ErrOrStderr(),
			})
			if errors.IsToolExit(err) {
				return &silentError{err: err}
			}
			return err
		},
	}
}

func newFilesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "files [packages...]",
		Short:             MsgFilesShort,
		Long:              MsgFilesLong,
		ValidArgsFunction: opts.completePackages,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.workspace()
			if err != nil {
				return err
			}
			result, err := commands.Files(cmd.Context(), commands.FilesOptions{
				Workspace: ws,
				Packages:  args,
			})
			if err != nil {
				return err
			}
			return opts.render(cmd, result)
		},
	}
}

func newStoreCmd(opts *globalOptions) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:               "store [packages...]",
		Short:             MsgStoreShort,
		Long:              MsgStoreLong,
		Example:           MsgStoreExample,
		ValidArgsFunction: opts.completePackages,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.workspace()
			if err != nil {
				return err
			}
			result, err := commands.Store(cmd.Context(), commands.StoreOptions{
				Workspace: ws,
				Packages:  args,
				Message:   message,
				DryRun:    opts.dryRun,
			})
			if err != nil {
				return err
			}
			return opts.render(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", MsgFlagMessage)
	return cmd
}

func newInstallCmd(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:               "install [packages...]",
		Short:             MsgInstallShort,
		Long:              MsgInstallLong,
		Example:           MsgInstallExample,
		ValidArgsFunction: opts.completePackages,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.workspace()
			if err != nil {
				return err
			}

			// Keep make's chatter out of machine-readable output
			var makeOut io.Writer = cmd.OutOrStdout()
			if f, _ := ui.ParseFormat(opts.format); f == ui.FormatJSON {
				makeOut = cmd.ErrOrStderr()
			}

			result, err := commands.Install(cmd.Context(), commands.InstallOptions{
				Workspace: ws,
				Packages:  args,
				Force:     force,
				DryRun:    opts.dryRun,
				Stdout:    makeOut,
				Stderr:    cmd.ErrOrStderr(),
				Warn:      ui.Warn,
			})
			if err != nil {
				return err
			}
			return opts.render(cmd, result)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "status [packages...]",
		Short:             MsgStatusShort,
		Long:              MsgStatusLong,
		ValidArgsFunction: opts.completePackages,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.workspace()
			if err != nil {
				return err
			}
			result, err := commands.Status(cmd.Context(), commands.StatusOptions{
				Workspace: ws,
				Packages:  args,
			})
			if err != nil {
				return err
			}
			return opts.render(cmd, result)
		},
	}
}

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.workspace()
			if err != nil {
				return err
			}
			result, err := commands.List(commands.ListOptions{Workspace: ws})
			if err != nil {
				return err
			}
			return opts.render(cmd, result)
		},
	}
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write {
				path := opts.configFile
				if path == "" {
					path = config.UserConfigPath()
				}
				if err := config.WriteConfigFile(path); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
				return err
			}

			cfg, err := opts.config()
			if err != nil {
				return err
			}
			out, err := config.Generate(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "dots version %s\n", version.Version)
			fmt.Fprintf(w, "  commit: %s\n", version.Commit)
			fmt.Fprintf(w, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
		},
	}
}

// completePackages offers package names not already on the command line
func (g *globalOptions) completePackages(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := g.config()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	pkgs, err := packages.Discover(cfg.DotfilesDir)
	if err != nil {
		log.Debug().Err(err).Msg("Package completion failed")
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	used := make(map[string]bool, len(args))
	for _, a := range args {
		used[a] = true
	}
	var names []string
	for _, name := range packages.Names(pkgs) {
		if !used[name] {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
