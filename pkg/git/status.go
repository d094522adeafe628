package git

import (
	"strings"

	"github.com/arthur-debert/dots/pkg/errors"
)

// StatusEntry is one record of `git status --porcelain -z`
type StatusEntry struct {
	// Index and WorkTree are the X and Y status letters
	Index    byte
	WorkTree byte
	Path     string
	// OrigPath is set for renames and copies
	OrigPath string
}

// Untracked reports a file git does not know about
func (e StatusEntry) Untracked() bool {
	return e.Index == '?' && e.WorkTree == '?'
}

// Ignored reports a file excluded by ignore rules
func (e StatusEntry) Ignored() bool {
	return e.Index == '!' && e.WorkTree == '!'
}

// Modified reports a tracked file with staged or unstaged changes
func (e StatusEntry) Modified() bool {
	return !e.Untracked() && !e.Ignored() && (e.Index != ' ' || e.WorkTree != ' ')
}

// Deleted reports a tracked file removed from the work tree or index
func (e StatusEntry) Deleted() bool {
	return e.Index == 'D' || e.WorkTree == 'D'
}

// ParseStatus parses porcelain v1 output produced with -z
func ParseStatus(out []byte) ([]StatusEntry, error) {
	var entries []StatusEntry
	fields := strings.Split(string(out), "\x00")

	for i := 0; i < len(fields); i++ {
		field := fields[i]
		if field == "" {
			continue
		}
		if len(field) < 4 || field[2] != ' ' {
			return nil, errors.Newf(errors.ErrToolOutput, "malformed status entry %q", field)
		}

		entry := StatusEntry{
			Index:    field[0],
			WorkTree: field[1],
			Path:     field[3:],
		}

		// Renames and copies carry the source path in the next field
		if entry.Index == 'R' || entry.Index == 'C' {
			if i+1 >= len(fields) || fields[i+1] == "" {
				return nil, errors.Newf(errors.ErrToolOutput, "missing source path for %q", field)
			}
			i++
			entry.OrigPath = fields[i]
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
