package core

import (
	"context"
	"os"

	"github.com/arthur-debert/dots/pkg/build"
	"github.com/arthur-debert/dots/pkg/config"
	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/git"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/packages"
	"github.com/arthur-debert/dots/pkg/paths"
	"github.com/arthur-debert/dots/pkg/runner"
)

// Workspace is a configured dots installation
type Workspace struct {
	Paths   *paths.Paths
	Repo    *git.Repo
	Builder *build.Builder
}

// NewWorkspace wires git and make through r using cfg's locations and tools
func NewWorkspace(cfg *config.Config, r runner.Runner) *Workspace {
	p := paths.New(cfg.Home, cfg.DotfilesDir, cfg.GitDir)
	return &Workspace{
		Paths:   p,
		Repo:    git.New(r, cfg.Tools.Git, p.GitDir(), p.Home()),
		Builder: build.New(r, cfg.Tools.Make, p.Home(), cfg.Build.Target),
	}
}

// RequireRepo fails with ErrNotInitialized when the bare repository is absent
func (w *Workspace) RequireRepo() error {
	if w.Repo.Exists() {
		return nil
	}
	return errors.Newf(errors.ErrNotInitialized,
		"no repository at %s, run 'dots init' first", w.Paths.GitDir()).
		WithDetail("git_dir", w.Paths.GitDir())
}

// Packages resolves names in the dotfiles directory; none selects all
func (w *Workspace) Packages(names []string) ([]packages.Package, error) {
	return packages.Select(w.Paths.DotfilesDir(), names)
}

// PackageFiles returns the home files pkg installs
func (w *Workspace) PackageFiles(ctx context.Context, pkg packages.Package) ([]string, error) {
	return w.Builder.Files(ctx, pkg.Path)
}

// TrackedSet returns the repository's tracked files keyed by home-relative path
func (w *Workspace) TrackedSet(ctx context.Context) (map[string]bool, error) {
	tracked, err := w.Repo.TrackedFiles(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(tracked))
	for _, f := range tracked {
		set[f] = true
	}
	logger := logging.GetLogger("core")
	logger.Trace().Int("tracked", len(set)).Msg("Loaded tracked files")
	return set, nil
}

// ChangeSet holds git's status entries keyed by home-relative path
type ChangeSet map[string]git.StatusEntry

// Modified reports a tracked file with local changes, deletions included
func (c ChangeSet) Modified(rel string) bool {
	e, ok := c[rel]
	return ok && e.Modified()
}

// Deleted reports a tracked file removed from the work tree or index
func (c ChangeSet) Deleted(rel string) bool {
	e, ok := c[rel]
	return ok && e.Deleted()
}

// Changes returns the status entries git reports for rels. No paths means
// no git call and an empty set.
func (w *Workspace) Changes(ctx context.Context, rels []string) (ChangeSet, error) {
	set := make(ChangeSet)
	if len(rels) == 0 {
		return set, nil
	}
	entries, err := w.Repo.Status(ctx, rels...)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		set[e.Path] = e
	}
	return set, nil
}

// Exists reports whether path is present, symlinks included
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
