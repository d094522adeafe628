// Package config handles configuration management for dots.
//
// Values are layered with koanf, later sources winning:
//
//  1. embedded defaults (embedded/defaults.toml) plus the computed home and
//     git storage directories
//  2. the user file, $DOTS_CONFIG or $XDG_CONFIG_HOME/dots/config.toml
//  3. environment variables
//
// # Environment Variables
//
//   - DOTS_HOME: work tree of the bare repository (default: $HOME)
//   - DOTS_DIR: directory holding the packages (default: ~/.dotfiles)
//   - DOTS_GIT_DIR: bare repository location (default: $XDG_DATA_HOME/dots/repo.git)
//   - DOTS_GIT, DOTS_MAKE: tool binaries
//   - DOTS_TARGET: make goal used for listing and installing
package config
