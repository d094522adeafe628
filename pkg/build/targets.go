package build

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/arthur-debert/dots/pkg/paths"
)

// remakeLine matches make's basic debug output. Older releases quote
// with a backtick, newer ones with a plain single quote.
var remakeLine = regexp.MustCompile("Must remake target [`'](.+)'\\.\\s*$")

// ParseRemadeTargets extracts the targets named in "Must remake target"
// lines, in output order.
func ParseRemadeTargets(out []byte) []string {
	var targets []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		m := remakeLine.FindStringSubmatch(scanner.Text())
		if m != nil {
			targets = append(targets, m[1])
		}
	}
	return targets
}

// FilterTargets resolves targets against pkgDir and keeps those inside
// home but outside the package, sorted and deduplicated. A target that
// contains another kept target is a directory rule and is dropped.
func FilterTargets(targets []string, pkgDir, home string) []string {
	seen := make(map[string]bool)
	var files []string

	for _, target := range targets {
		path := target
		if !filepath.IsAbs(path) {
			path = filepath.Join(pkgDir, path)
		}
		path = filepath.Clean(path)

		if !paths.ContainsPath(home, path) || paths.ContainsPath(pkgDir, path) || path == filepath.Clean(home) {
			continue
		}
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	sort.Strings(files)
	return dropParents(files)
}

// dropParents removes every path that is an ancestor of another path in
// files. files must be sorted.
func dropParents(files []string) []string {
	kept := files[:0]
	for i, path := range files {
		parent := false
		for _, other := range files[i+1:] {
			if other != path && paths.ContainsPath(path, other) {
				parent = true
				break
			}
		}
		if !parent {
			kept = append(kept, path)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// DropDirectories removes paths that exist as real directories. Git
// tracks files only, so a directory target can be neither stored nor
// checked for conflicts. Symlinks are kept whatever they point at.
func DropDirectories(files []string) (kept, dirs []string) {
	for _, path := range files {
		if info, err := os.Lstat(path); err == nil && info.IsDir() {
			dirs = append(dirs, path)
			continue
		}
		kept = append(kept, path)
	}
	return kept, dirs
}
