package cli

import (
	"embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A minimal dotfiles manager built on git and make"
	MsgInitShort       = "Create the dotfiles directory and the bare repository"
	MsgGitShort        = "Run git against the dots repository"
	MsgFilesShort      = "List the home files packages install"
	MsgStoreShort      = "Add package files to the dots repository"
	MsgInstallShort    = "Install packages with make"
	MsgStatusShort     = "Show the tracking state of package files"
	MsgListShort       = "List all packages"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/dots/config.toml)"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagForce   = "Install over files that exist but are not tracked"
	MsgFlagMessage = "Commit the stored files with this message"
	MsgFlagWrite   = "Write a starter config file instead of printing"

	// Status messages
	MsgConfigWritten = "Wrote %s\n"
)

//go:embed msgs/*.txt
var msgsFS embed.FS

//go:embed topics
var topicsFS embed.FS

// Long messages from embedded files
var (
	MsgRootLong       = msg("root-long")
	MsgInitLong       = msg("init-long")
	MsgGitLong        = msg("git-long")
	MsgGitExample     = msg("git-example")
	MsgFilesLong      = msg("files-long")
	MsgStoreLong      = msg("store-long")
	MsgStoreExample   = msg("store-example")
	MsgInstallLong    = msg("install-long")
	MsgInstallExample = msg("install-example")
	MsgStatusLong     = msg("status-long")
	MsgConfigLong     = msg("config-long")
	MsgCompletionLong = msg("completion-long")
	MsgUsageTemplate  = msg("usage-template") + "\n"
)

func msg(name string) string {
	data, err := msgsFS.ReadFile("msgs/" + name + ".txt")
	if err != nil {
		panic("missing message " + name)
	}
	return strings.TrimSpace(string(data))
}
