// Package packages discovers and selects dots packages.
//
// A package is a direct, non-hidden subdirectory of the dotfiles directory
// that holds a make build file. A .dotsignore file inside a directory
// removes it from discovery.
package packages
