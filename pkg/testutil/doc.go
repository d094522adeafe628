// Package testutil provides utilities for testing dots components.
//
// Key components:
//   - filesystem helpers (TempDir, CreateFile, CreateDir, FileExists, ...)
//   - TestEnvironment: an isolated home, dotfiles directory and bare
//     repository location, with every DOTS_* and XDG_* variable pointed at
//     a temp dir and a fixed git identity
//   - AddPackage: writes a package whose Makefile installs files into
//     $(HOME), the layout the commands expect
//
// Tests that shell out to git or make call RequireTool first so they skip
// cleanly where the tool is missing.
package testutil
