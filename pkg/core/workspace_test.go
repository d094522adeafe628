package core_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/dots/pkg/config"
	"github.com/arthur-debert/dots/pkg/core"
	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/runner"
	"github.com/arthur-debert/dots/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkspace(env *testutil.TestEnvironment, r runner.Runner) *core.Workspace {
	return core.NewWorkspace(&config.Config{
		Home:        env.Home,
		DotfilesDir: env.DotfilesDir,
		GitDir:      env.GitDir,
		Tools:       config.ToolsConfig{Git: "git", Make: "make"},
		Build:       config.BuildConfig{Target: "install"},
	}, r)
}

func TestRequireRepo(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	ws := newWorkspace(env, runner.NewFakeRunner())

	err := ws.RequireRepo()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotInitialized))

	env.MarkRepoInitialized()
	assert.NoError(t, ws.RequireRepo())
}

func TestTrackedSetAndChanges(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	fake := runner.NewFakeRunner().
		On("git --git-dir="+env.GitDir+" --work-tree="+env.Home+" ls-files", runner.Response{
			Stdout: ".vimrc\x00.zshrc\x00",
		}).
		On("git --git-dir="+env.GitDir+" --work-tree="+env.Home+" status", runner.Response{
			Stdout: " M .zshrc\x00 D .vimrc\x00",
		})
	ws := newWorkspace(env, fake)
	ctx := context.Background()

	tracked, err := ws.TrackedSet(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{".vimrc": true, ".zshrc": true}, tracked)

	changes, err := ws.Changes(ctx, []string{".vimrc", ".zshrc", ".bashrc"})
	require.NoError(t, err)
	assert.True(t, changes.Modified(".zshrc"))
	assert.False(t, changes.Deleted(".zshrc"))
	assert.True(t, changes.Modified(".vimrc"))
	assert.True(t, changes.Deleted(".vimrc"))
	assert.False(t, changes.Modified(".bashrc"), "clean files have no entry")
	assert.False(t, changes.Deleted(".bashrc"))

	empty, err := ws.Changes(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Len(t, fake.Calls, 2, "no status call without paths")
}

func TestExists(t *testing.T) {
	dir := testutil.TempDir(t)
	f := testutil.CreateFile(t, dir, "a", "x")

	assert.True(t, core.Exists(f))
	assert.False(t, core.Exists(dir+"/missing"))
}
