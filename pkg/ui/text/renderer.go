// Package text renders command results as line-oriented text, optionally
// styled for colour terminals.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dots/pkg/types"
	"github.com/arthur-debert/dots/pkg/ui/styles"
)

// Renderer writes results as text
type Renderer struct {
	output io.Writer
	styled bool
	// err is the first write error of the current RenderResult
	err error
}

// New creates a text renderer; styled enables lipgloss styles
func New(output io.Writer, styled bool) *Renderer {
	return &Renderer{output: output, styled: styled}
}

// RenderResult renders a command result
func (r *Renderer) RenderResult(result interface{}) error {
	r.err = nil
	switch v := result.(type) {
	case *types.ListPackagesResult:
		for _, p := range v.Packages {
			r.line(r.style("Package", p.Name))
		}
	case *types.FilesResult:
		for _, f := range v.AllFiles() {
			r.line(f)
		}
	case *types.InitResult:
		r.renderInit(v)
	case *types.StoreResult:
		r.renderStore(v)
	case *types.InstallResult:
		r.renderInstall(v)
	case *types.StatusResult:
		r.renderStatus(v)
	case nil:
	default:
		r.line(fmt.Sprintf("%+v", result))
	}
	return r.err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, e := fmt.Fprintf(r.output, "%s %v\n", r.style("Error", "Error:"), err)
	return e
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) renderInit(v *types.InitResult) {
	verb := func(done, planned string) string {
		if v.DryRun {
			return planned
		}
		return done
	}
	if v.CreatedDotfilesDir {
		r.line(fmt.Sprintf("%s %s", verb("Created", "Would create"), r.style("FilePath", v.DotfilesDir)))
	}
	if v.CreatedRepo {
		r.line(fmt.Sprintf("%s bare repository in %s",
			verb("Initialized", "Would initialize"), r.style("FilePath", v.GitDir)))
	} else {
		r.line(fmt.Sprintf("Repository already exists in %s", r.style("FilePath", v.GitDir)))
	}
}

func (r *Renderer) renderStore(v *types.StoreResult) {
	verb := "stored"
	if v.DryRun {
		verb = "would store"
	}
	for _, p := range v.Packages {
		r.line(r.style("Package", p.Name))
		for _, f := range p.Stored {
			r.line(fmt.Sprintf("  %s %s", r.style("Success", verb), f))
		}
		if p.PackageDir != "" {
			r.line(fmt.Sprintf("  %s %s", r.style("Success", verb), p.PackageDir))
		}
		for _, f := range p.Missing {
			r.line(fmt.Sprintf("  %s %s", r.style("missing", "missing"), r.style("FilePath", f)))
		}
	}
	if v.Committed {
		r.line("Committed.")
	}
}

func (r *Renderer) renderInstall(v *types.InstallResult) {
	if v.DryRun {
		if len(v.Packages) == 0 {
			r.line("No packages to install.")
			return
		}
		r.line(fmt.Sprintf("Would install: %s", strings.Join(v.Packages, ", ")))
		return
	}
	for _, name := range v.Installed {
		r.line(fmt.Sprintf("%s %s", r.style("Success", "installed"), r.style("Package", name)))
	}
}

func (r *Renderer) renderStatus(v *types.StatusResult) {
	for i, p := range v.Packages {
		if i > 0 {
			r.line("")
		}
		r.line(r.style("Package", p.Name))
		if len(p.Files) == 0 {
			r.line("  " + r.style("Muted", "(no files)"))
			continue
		}
		for _, f := range p.Files {
			state := string(f.State)
			padded := fmt.Sprintf("%-9s", state)
			r.line(fmt.Sprintf("  %s %s", r.style(state, padded), f.Path))
		}
	}
}

func (r *Renderer) style(name, s string) string {
	if !r.styled {
		return s
	}
	return styles.Render(name, s)
}

func (r *Renderer) line(s string) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintln(r.output, s)
}
