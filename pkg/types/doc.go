// Package types holds the result structures returned by dots commands.
// They carry no behaviour beyond small helpers and are rendered by the CLI.
package types
