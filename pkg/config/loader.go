package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadOptions adjusts where configuration is read from
type LoadOptions struct {
	// ConfigFile replaces the default user config path when set
	ConfigFile string
}

// Load resolves the configuration from defaults, the user file and the
// environment, then normalizes every path.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	if err := k.Load(confmap.Provider(computedDefaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load computed defaults")
	}

	// 2. User config file
	configPath := opts.ConfigFile
	if configPath == "" {
		configPath = UserConfigPath()
	}
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configPath).
				WithDetail("path", configPath)
		}
		logger.Debug().Str("path", configPath).Msg("Loaded user config")
	} else if opts.ConfigFile != "" {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s is not readable", configPath)
	}

	// 3. Environment
	if err := k.Load(env.Provider("DOTS_", ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := normalize(&cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("home", cfg.Home).
		Str("dotfiles_dir", cfg.DotfilesDir).
		Str("git_dir", cfg.GitDir).
		Msg("Configuration resolved")

	return &cfg, nil
}

// UserConfigPath returns the user config file location
func UserConfigPath() string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "dots", "config.toml")
}

// envKey maps a DOTS_* variable to its config key; unknown or empty
// variables are dropped.
func envKey(name string) string {
	key, ok := envKeys[name]
	if !ok || os.Getenv(name) == "" {
		return ""
	}
	return key
}

func computedDefaults() map[string]interface{} {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}

	return map[string]interface{}{
		"home":    home,
		"git_dir": filepath.Join(dataHome, "dots", "repo.git"),
	}
}

func normalize(cfg *Config) error {
	if cfg.Home == "" {
		return errors.New(errors.ErrConfigLoad, "home directory is not set")
	}

	home, err := absPath(cfg.Home, "")
	if err != nil {
		return err
	}
	cfg.Home = home

	if cfg.DotfilesDir, err = absPath(cfg.DotfilesDir, home); err != nil {
		return err
	}
	if cfg.GitDir, err = absPath(cfg.GitDir, home); err != nil {
		return err
	}

	if cfg.Tools.Git == "" || cfg.Tools.Make == "" {
		return errors.New(errors.ErrConfigLoad, "tool binaries must not be empty")
	}
	if cfg.Build.Target == "" {
		return errors.New(errors.ErrConfigLoad, "build target must not be empty")
	}
	return nil
}

// absPath expands a leading "~" against home and makes p absolute
func absPath(p, home string) (string, error) {
	if p == "" {
		return "", errors.New(errors.ErrConfigLoad, "path must not be empty")
	}
	p = ExpandHome(p, home)
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", p)
	}
	return abs, nil
}

// ExpandHome expands a leading "~" or "~/" against home. When home is
// empty the user's home directory is used.
func ExpandHome(p, home string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return p
	}
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		home = h
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}
