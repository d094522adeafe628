package git

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/runner"
	"github.com/arthur-debert/dots/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoCommandLines(t *testing.T) {
	fake := runner.NewFakeRunner().
		On("git --git-dir=/g --work-tree=/h ls-files", runner.Response{Stdout: ".vimrc\x00.config/git/config\x00"})
	repo := New(fake, "git", "/g", "/h")
	ctx := context.Background()

	require.NoError(t, repo.Init(ctx))
	files, err := repo.TrackedFiles(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, ".vimrc", ".dotfiles/vim"))
	require.NoError(t, repo.Commit(ctx, "store vim"))
	require.NoError(t, repo.Add(ctx))

	assert.Equal(t, []string{".vimrc", ".config/git/config"}, files)
	assert.Equal(t, []string{
		"git init --quiet --bare /g",
		"git --git-dir=/g --work-tree=/h config status.showUntrackedFiles no",
		"git --git-dir=/g --work-tree=/h ls-files -z --full-name",
		"git --git-dir=/g --work-tree=/h add --force -- .vimrc .dotfiles/vim",
		"git --git-dir=/g --work-tree=/h commit --quiet -m store vim",
	}, fake.Lines())

	// Internal commands run from the work tree
	assert.Equal(t, "/h", fake.Calls[2].Dir)
}

func TestRepoExecPassesStdio(t *testing.T) {
	fake := runner.NewFakeRunner().On("git", runner.Response{Stdout: "On branch main\n"})
	repo := New(fake, "git", "/g", "/h")

	var stdout bytes.Buffer
	require.NoError(t, repo.Exec(context.Background(), []string{"status", "-s"}, nil, &stdout, nil))

	assert.Equal(t, "On branch main\n", stdout.String())
	assert.Equal(t, []string{"git --git-dir=/g --work-tree=/h status -s"}, fake.Lines())
	assert.Equal(t, "", fake.Calls[0].Dir)
}

func TestRepoCommitRequiresMessage(t *testing.T) {
	repo := New(runner.NewFakeRunner(), "git", "/g", "/h")
	err := repo.Commit(context.Background(), "  ")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRepoIntegration(t *testing.T) {
	testutil.RequireTool(t, "git")
	env := testutil.NewTestEnvironment(t)
	ctx := context.Background()

	repo := New(runner.NewExecRunner(), "git", env.GitDir, env.Home)
	assert.False(t, repo.Exists())

	require.NoError(t, repo.Init(ctx))
	assert.True(t, repo.Exists())
	assert.True(t, testutil.DirExists(t, env.GitDir))

	testutil.CreateFile(t, env.Home, ".vimrc", "set number\n")
	testutil.CreateFile(t, env.Home, ".config/git/config", "[user]\n")

	tracked, err := repo.TrackedFiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, tracked)

	status, err := repo.Status(ctx, ".vimrc")
	require.NoError(t, err)
	require.Len(t, status, 1)
	assert.True(t, status[0].Untracked())

	require.NoError(t, repo.Add(ctx, ".vimrc", filepath.Join(".config", "git", "config")))
	require.NoError(t, repo.Commit(ctx, "initial"))

	tracked, err = repo.TrackedFiles(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{".vimrc", ".config/git/config"}, tracked)

	clean, err := repo.IsClean(ctx)
	require.NoError(t, err)
	assert.True(t, clean)

	testutil.CreateFile(t, env.Home, ".vimrc", "set nonumber\n")
	clean, err = repo.IsClean(ctx)
	require.NoError(t, err)
	assert.False(t, clean)

	status, err = repo.Status(ctx, ".vimrc")
	require.NoError(t, err)
	require.Len(t, status, 1)
	assert.True(t, status[0].Modified())

	// Passthrough keeps git's exit status
	err = repo.Exec(ctx, []string{"rev-parse", "--verify", "no-such-ref"}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, 128, errors.ExitCode(err))
}
