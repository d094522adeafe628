// Package core binds the configuration to the collaborators every command
// needs: resolved paths, the bare repository and the package builder.
//
// Commands receive a Workspace rather than a Config so that tests can swap
// the runner behind git and make without touching the filesystem layout.
package core
