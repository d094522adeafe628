// Package commands provides high-level command implementations for dots.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the git and make wrappers.
//
// Each command is implemented in its own subdirectory:
//   - initialize/ - Init command
//   - gitexec/    - Git passthrough
//   - files/      - Files command
//   - store/      - Store command
//   - install/    - Install command
//   - status/     - Status command
//   - list/       - List command
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"context"

	"github.com/arthur-debert/dots/pkg/commands/files"
	"github.com/arthur-debert/dots/pkg/commands/gitexec"
	"github.com/arthur-debert/dots/pkg/commands/initialize"
	"github.com/arthur-debert/dots/pkg/commands/install"
	"github.com/arthur-debert/dots/pkg/commands/list"
	"github.com/arthur-debert/dots/pkg/commands/status"
	"github.com/arthur-debert/dots/pkg/commands/store"
	"github.com/arthur-debert/dots/pkg/types"
)

// Init creates the dotfiles directory and the bare repository.
type InitOptions = initialize.InitOptions

func Init(ctx context.Context, opts InitOptions) (*types.InitResult, error) {
	return initialize.Init(ctx, opts)
}

// Git runs git against the bare repository.
type GitOptions = gitexec.GitOptions

func Git(ctx context.Context, opts GitOptions) error {
	return gitexec.Git(ctx, opts)
}

// Files lists the home files each package installs.
type FilesOptions = files.FilesOptions

func Files(ctx context.Context, opts FilesOptions) (*types.FilesResult, error) {
	return files.Files(ctx, opts)
}

// Store adds package files to the bare repository.
type StoreOptions = store.StoreOptions

func Store(ctx context.Context, opts StoreOptions) (*types.StoreResult, error) {
	return store.Store(ctx, opts)
}

// Install runs package install goals after the untracked-file check.
type InstallOptions = install.InstallOptions

func Install(ctx context.Context, opts InstallOptions) (*types.InstallResult, error) {
	return install.Install(ctx, opts)
}

// Status reports the tracking state of package files.
type StatusOptions = status.StatusOptions

func Status(ctx context.Context, opts StatusOptions) (*types.StatusResult, error) {
	return status.Status(ctx, opts)
}

// List finds the packages in the dotfiles directory.
type ListOptions = list.ListOptions

func List(opts ListOptions) (*types.ListPackagesResult, error) {
	return list.List(opts)
}
