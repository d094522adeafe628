package config

// Config holds the resolved dots settings. All paths are absolute once
// returned by Load.
type Config struct {
	// Home is the work tree of the bare repository and the install root
	Home string `koanf:"home" toml:"home"`
	// DotfilesDir holds one subdirectory per package
	DotfilesDir string `koanf:"dotfiles_dir" toml:"dotfiles_dir"`
	// GitDir is the bare repository storage directory
	GitDir string      `koanf:"git_dir" toml:"git_dir"`
	Tools  ToolsConfig `koanf:"tools" toml:"tools"`
	Build  BuildConfig `koanf:"build" toml:"build"`
}

// ToolsConfig names the external binaries dots drives
type ToolsConfig struct {
	Git  string `koanf:"git" toml:"git"`
	Make string `koanf:"make" toml:"make"`
}

// BuildConfig controls the make invocation
type BuildConfig struct {
	Target string `koanf:"target" toml:"target"`
}

// envKeys maps environment variables to config keys
var envKeys = map[string]string{
	"DOTS_HOME":    "home",
	"DOTS_DIR":     "dotfiles_dir",
	"DOTS_GIT_DIR": "git_dir",
	"DOTS_GIT":     "tools.git",
	"DOTS_MAKE":    "tools.make",
	"DOTS_TARGET":  "build.target",
}

// EnvConfigFile overrides the user config file location
const EnvConfigFile = "DOTS_CONFIG"
