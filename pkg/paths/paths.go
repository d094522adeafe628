package paths

import (
	"path/filepath"
)

// BuildFiles are the file names make looks for, in its own lookup order
var BuildFiles = []string{"GNUmakefile", "makefile", "Makefile"}

// IgnoreFile marks a dotfiles subdirectory that is not a package
const IgnoreFile = ".dotsignore"

// Paths resolves dots locations
type Paths struct {
	home        string
	dotfilesDir string
	gitDir      string
}

// New creates a Paths from absolute home, dotfiles and git directories
func New(home, dotfilesDir, gitDir string) *Paths {
	return &Paths{
		home:        filepath.Clean(home),
		dotfilesDir: filepath.Clean(dotfilesDir),
		gitDir:      filepath.Clean(gitDir),
	}
}

// Home returns the work tree root
func (p *Paths) Home() string { return p.home }

// DotfilesDir returns the directory holding packages
func (p *Paths) DotfilesDir() string { return p.dotfilesDir }

// GitDir returns the bare repository directory
func (p *Paths) GitDir() string { return p.gitDir }

// PackagePath returns the directory of the named package
func (p *Paths) PackagePath(name string) string {
	return filepath.Join(p.dotfilesDir, name)
}

// HomeRelative returns path relative to home, and false when path lies
// outside of it.
func (p *Paths) HomeRelative(path string) (string, bool) {
	if !ContainsPath(p.home, path) {
		return "", false
	}
	rel, err := filepath.Rel(p.home, filepath.Clean(path))
	if err != nil || rel == "." {
		return "", false
	}
	return rel, true
}

// HomeRelativeAll maps paths to home-relative form, dropping any outside home
func (p *Paths) HomeRelativeAll(paths []string) []string {
	rels := make([]string, 0, len(paths))
	for _, path := range paths {
		if rel, ok := p.HomeRelative(path); ok {
			rels = append(rels, rel)
		}
	}
	return rels
}
