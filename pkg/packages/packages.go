package packages

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/paths"
)

// Package is a named directory with build rules
type Package struct {
	Name string
	Path string
	// BuildFile is the make file found in Path
	BuildFile string
}

// Discover returns every package in root, sorted by name
func Discover(root string) ([]Package, error) {
	logger := logging.GetLogger("packages.discovery")

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "dotfiles directory does not exist").
				WithDetail("path", root)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access dotfiles directory").
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "dotfiles directory is not a directory").
			WithDetail("path", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read dotfiles directory").
			WithDetail("path", root)
	}

	var pkgs []Package
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		dir := filepath.Join(root, name)
		if IsIgnored(dir) {
			logger.Debug().Str("package", name).Msg("Skipping directory with ignore file")
			continue
		}

		buildFile := FindBuildFile(dir)
		if buildFile == "" {
			logger.Trace().Str("dir", name).Msg("Skipping directory without build file")
			continue
		}

		pkgs = append(pkgs, Package{Name: name, Path: dir, BuildFile: buildFile})
	}

	sort.Slice(pkgs, func(i, j int) bool {
		return pkgs[i].Name < pkgs[j].Name
	})

	logger.Debug().Int("count", len(pkgs)).Msg("Discovered packages")
	return pkgs, nil
}

// Select resolves names to packages. No names selects every package.
// Duplicate names are collapsed, keeping the first position.
func Select(root string, names []string) ([]Package, error) {
	if len(names) == 0 {
		return Discover(root)
	}

	seen := make(map[string]bool, len(names))
	pkgs := make([]Package, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		pkg, err := Get(root, name)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, nil
}

// Get loads a single named package
func Get(root, name string) (Package, error) {
	if err := paths.ValidatePackageName(name); err != nil {
		return Package{}, err
	}

	dir := filepath.Join(root, name)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return Package{}, errors.Newf(errors.ErrPackageNotFound, "package %q not found", name).
			WithDetail("package", name).
			WithDetail("path", dir)
	}

	buildFile := FindBuildFile(dir)
	if buildFile == "" {
		return Package{}, errors.Newf(errors.ErrPackageInvalid, "package %q has no Makefile", name).
			WithDetail("package", name)
	}

	return Package{Name: name, Path: dir, BuildFile: buildFile}, nil
}

// FindBuildFile returns the name of the first make file in dir, or ""
func FindBuildFile(dir string) string {
	for _, name := range paths.BuildFiles {
		info, err := os.Stat(filepath.Join(dir, name))
		if err == nil && info.Mode().IsRegular() {
			return name
		}
	}
	return ""
}

// IsIgnored reports whether dir carries an ignore file
func IsIgnored(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, paths.IgnoreFile))
	return err == nil
}

// Names returns the package names in order
func Names(pkgs []Package) []string {
	names := make([]string, len(pkgs))
	for i, p := range pkgs {
		names[i] = p.Name
	}
	return names
}
