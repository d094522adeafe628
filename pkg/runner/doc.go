// Package runner executes external tools for dots.
//
// Every git and make invocation goes through a Runner so the wrappers in
// pkg/git and pkg/build can be exercised against a recording fake in tests.
// Commands run sequentially; a non-zero exit status is returned wrapped so
// that errors.ExitCode can hand it back to the shell unchanged.
package runner
