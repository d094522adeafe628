package cli

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"

	"github.com/arthur-debert/dots/internal/version"
	"github.com/arthur-debert/dots/pkg/cobrax/topics"
	"github.com/arthur-debert/dots/pkg/config"
	"github.com/arthur-debert/dots/pkg/core"
	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/runner"
	"github.com/arthur-debert/dots/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Streams are the standard streams a command tree reads and writes
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	dryRun     bool
	configFile string
	format     string
}

// workspace loads the configuration and wires git and make
func (g *globalOptions) workspace() (*core.Workspace, error) {
	cfg, err := g.config()
	if err != nil {
		return nil, err
	}
	return core.NewWorkspace(cfg, runner.NewExecRunner()), nil
}

func (g *globalOptions) config() (*config.Config, error) {
	return config.Load(config.LoadOptions{ConfigFile: g.configFile})
}

// render writes result to the command's output in the selected format
func (g *globalOptions) render(cmd *cobra.Command, result interface{}) error {
	format, err := ui.ParseFormat(g.format)
	if err != nil {
		return err
	}
	r, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

// silentError carries an exit status whose cause was already reported,
// such as a failing git passthrough.
type silentError struct {
	err error
}

func (e *silentError) Error() string { return e.err.Error() }
func (e *silentError) Unwrap() error { return e.err }

// NewRootCmd creates and returns the root command
func NewRootCmd(streams Streams) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "dots",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Newf(errors.ErrInvalidInput, "%v (see '%s --help')", err, cmd.CommandPath())
	})

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&opts.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newGitCmd(opts))
	rootCmd.AddCommand(newFilesCmd(opts))
	rootCmd.AddCommand(newStoreCmd(opts))
	rootCmd.AddCommand(newInstallCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	topicsDir, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		_ = topics.InitializeWithOptions(rootCmd, topicsDir, topics.Options{
			Renderer: topics.RendererFor(ui.DetectFormat(streams.Out) == ui.FormatTerminal, 80),
		})
	}

	return rootCmd
}

// Run executes the command tree with args (without the program name) and
// returns the process exit status. Errors are printed to the error stream;
// git and make failures keep their own exit status.
func Run(ctx context.Context, args []string, streams Streams) int {
	rootCmd := NewRootCmd(streams)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	log.Debug().
		Str("code", string(errors.GetErrorCode(err))).
		Fields(errors.GetErrorDetails(err)).
		Msg("Command failed")

	var silent *silentError
	if !stderrors.As(err, &silent) {
		ui.Error(streams.Err, err.Error())
	}
	return errors.ExitCode(err)
}
