package testutil

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// TestEnvironment is an isolated dots setup rooted in a temp directory
type TestEnvironment struct {
	Root        string
	Home        string
	DotfilesDir string
	GitDir      string

	t *testing.T
}

// NewTestEnvironment creates the directories and points the environment
// at them. The bare repository is not initialized.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:        root,
		Home:        filepath.Join(root, "home"),
		DotfilesDir: filepath.Join(root, "home", ".dotfiles"),
		GitDir:      filepath.Join(root, "data", "dots", "repo.git"),
		t:           t,
	}

	CreateDir(t, root, "home")
	CreateDir(t, env.Home, ".dotfiles")

	t.Setenv("HOME", env.Home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("DOTS_CONFIG", "")
	t.Setenv("DOTS_HOME", env.Home)
	t.Setenv("DOTS_DIR", env.DotfilesDir)
	t.Setenv("DOTS_GIT_DIR", env.GitDir)
	t.Setenv("DOTS_GIT", "")
	t.Setenv("DOTS_MAKE", "")
	t.Setenv("DOTS_TARGET", "")
	t.Setenv("NO_COLOR", "1")

	// Deterministic git identity, no user or system config
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(root, "gitconfig"))
	t.Setenv("GIT_AUTHOR_NAME", "Tests")
	t.Setenv("GIT_AUTHOR_EMAIL", "tests@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Tests")
	t.Setenv("GIT_COMMITTER_EMAIL", "tests@example.com")
	t.Setenv("MAKEFLAGS", "")

	return env
}

// HomePath joins rel onto the home directory
func (env *TestEnvironment) HomePath(rel string) string {
	return filepath.Join(env.Home, rel)
}

// AddPackage writes a package whose install goal copies each file to
// $(HOME)/<target>. files maps home-relative targets to content.
func (env *TestEnvironment) AddPackage(name string, files map[string]string) string {
	env.t.Helper()

	pkgDir := CreateDir(env.t, env.DotfilesDir, name)

	targets := make([]string, 0, len(files))
	for target, content := range files {
		CreateFile(env.t, filepath.Join(pkgDir, "files"), target, content)
		targets = append(targets, target)
	}
	sort.Strings(targets)

	CreateFile(env.t, pkgDir, "Makefile", PackageMakefile(targets))
	return pkgDir
}

// AddPackageWithMakefile writes a package with a hand-written Makefile.
// files maps package-relative paths to content.
func (env *TestEnvironment) AddPackageWithMakefile(name, makefile string, files map[string]string) string {
	env.t.Helper()

	pkgDir := CreateDir(env.t, env.DotfilesDir, name)
	for path, content := range files {
		CreateFile(env.t, pkgDir, path, content)
	}
	CreateFile(env.t, pkgDir, "Makefile", makefile)
	return pkgDir
}

// DirectoryMakefile installs rc into $(HOME)/.config/app/rc, creating the
// directory through an order-only prerequisite rule.
const DirectoryMakefile = ".PHONY: install\n" +
	"install: $(HOME)/.config/app/rc\n" +
	"\n" +
	"$(HOME)/.config/app/rc: rc | $(HOME)/.config/app\n" +
	"\tcp $< $@\n" +
	"\n" +
	"$(HOME)/.config/app:\n" +
	"\tmkdir -p $@\n"

// PackageMakefile renders the Makefile AddPackage writes
func PackageMakefile(targets []string) string {
	var b strings.Builder
	b.WriteString(".PHONY: install\n")
	b.WriteString("install:")
	for _, target := range targets {
		fmt.Fprintf(&b, " $(HOME)/%s", target)
	}
	b.WriteString("\n\n")
	b.WriteString("$(HOME)/%: files/%\n")
	b.WriteString("\t@mkdir -p $(dir $@)\n")
	b.WriteString("\tcp $< $@\n")
	return b.String()
}

// MarkRepoInitialized makes the git dir look like an initialized bare
// repository, for tests that fake out git itself.
func (env *TestEnvironment) MarkRepoInitialized() {
	env.t.Helper()
	CreateFile(env.t, env.GitDir, "HEAD", "ref: refs/heads/main\n")
}
