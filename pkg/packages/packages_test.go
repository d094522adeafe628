package packages

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDotfiles(t *testing.T) string {
	t.Helper()
	root := testutil.TempDir(t)

	testutil.CreateFile(t, root, "vim/Makefile", "install:\n")
	testutil.CreateFile(t, root, "git/GNUmakefile", "install:\n")
	testutil.CreateFile(t, root, "zsh/makefile", "install:\n")
	testutil.CreateFile(t, root, "notes/README", "not a package\n")
	testutil.CreateFile(t, root, "old/Makefile", "install:\n")
	testutil.CreateFile(t, root, "old/.dotsignore", "")
	testutil.CreateFile(t, root, ".git/Makefile", "install:\n")
	testutil.CreateFile(t, root, "Makefile", "all:\n")
	return root
}

func TestDiscover(t *testing.T) {
	root := setupDotfiles(t)

	pkgs, err := Discover(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"git", "vim", "zsh"}, Names(pkgs))
	assert.Equal(t, "GNUmakefile", pkgs[0].BuildFile)
	assert.Equal(t, filepath.Join(root, "vim"), pkgs[1].Path)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(testutil.TempDir(t), "missing"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestDiscoverRootIsFile(t *testing.T) {
	file := testutil.CreateFile(t, testutil.TempDir(t), "dotfiles", "")
	_, err := Discover(file)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestSelect(t *testing.T) {
	root := setupDotfiles(t)

	tests := []struct {
		name     string
		names    []string
		want     []string
		wantCode errors.ErrorCode
	}{
		{name: "all when empty", names: nil, want: []string{"git", "vim", "zsh"}},
		{name: "keeps order", names: []string{"zsh", "vim"}, want: []string{"zsh", "vim"}},
		{name: "collapses duplicates", names: []string{"vim", "vim"}, want: []string{"vim"}},
		{name: "unknown package", names: []string{"emacs"}, wantCode: errors.ErrPackageNotFound},
		{name: "no build file", names: []string{"notes"}, wantCode: errors.ErrPackageInvalid},
		{name: "path traversal", names: []string{"../etc"}, wantCode: errors.ErrInvalidInput},
		{name: "hidden", names: []string{".git"}, wantCode: errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkgs, err := Select(root, tt.names)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, Names(pkgs))
		})
	}
}
