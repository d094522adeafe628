// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (styled), text (plain), and JSON output formats.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dots/pkg/ui/json"
	"github.com/arthur-debert/dots/pkg/ui/styles"
	"github.com/arthur-debert/dots/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format writing to output.
// FormatAuto is resolved against output.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return text.New(output, true), nil
	case FormatText:
		return text.New(output, false), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// Warn writes "warning: msg" to w, styled when w is a colour terminal
func Warn(w io.Writer, msg string) {
	if w == nil {
		return
	}
	prefix := "warning:"
	if DetectFormat(w) == FormatTerminal {
		prefix = styles.Render("Warning", prefix)
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", prefix, msg)
}

// Error writes "Error: msg" to w, styled when w is a colour terminal
func Error(w io.Writer, msg string) {
	if w == nil {
		return
	}
	prefix := "Error:"
	if DetectFormat(w) == FormatTerminal {
		prefix = styles.Render("Error", prefix)
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", prefix, msg)
}
