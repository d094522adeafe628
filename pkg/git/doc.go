// Package git wraps the git binary around a bare repository whose work
// tree is the home directory.
//
// Every invocation is prefixed with --git-dir and --work-tree so the home
// directory never needs a .git of its own. Untracked files are hidden from
// plain `git status` by setting status.showUntrackedFiles=no at init time;
// the wrappers that need them ask for them explicitly.
package git
