package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dots/pkg/errors"
)

// ValidatePackageName ensures a package name names a direct child
// directory of the dotfiles directory. Names must not be empty, contain
// path separators or control characters, or start with a dot.
func ValidatePackageName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "package name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.Newf(errors.ErrInvalidInput, "package name %q cannot contain path separators", name)
	}

	if strings.HasPrefix(name, ".") {
		return errors.Newf(errors.ErrInvalidInput, "package name %q cannot start with a dot", name)
	}

	for _, r := range name {
		if r < 32 {
			return errors.New(errors.ErrInvalidInput, "package name contains control characters")
		}
	}

	return nil
}

// ContainsPath checks if child is parent or lies within it.
// Both paths are cleaned before comparison.
func ContainsPath(parent, child string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(child))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
