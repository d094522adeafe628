package main

import (
	"encoding/json"
	"testing"

	"4d63.com/testcli"
	"github.com/arthur-debert/dots/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dots(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	return testcli.Main(t, append([]string{"dots"}, args...), nil, run)
}

func TestHelp(t *testing.T) {
	testutil.NewTestEnvironment(t)

	exitCode, stdout, stderr := dots(t, "help")
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "", stderr)
	assert.Contains(t, stdout, "USAGE:")
	for _, name := range []string{"init", "git", "files", "store", "install", "status", "list"} {
		assert.Contains(t, stdout, "\n  "+name+" ")
	}
}

func TestHelpCommandAndTopic(t *testing.T) {
	testutil.NewTestEnvironment(t)

	exitCode, stdout, _ := dots(t, "help", "install")
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "--force")

	exitCode, stdout, _ = dots(t, "help", "packages")
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "# Packages")

	exitCode, stdout, _ = dots(t, "help", "topics")
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "bare-repository")
	assert.Contains(t, stdout, "--dry-run")

	exitCode, _, stderr := dots(t, "help", "no-such-thing")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "Error:")
}

func TestVersion(t *testing.T) {
	testutil.NewTestEnvironment(t)

	exitCode, stdout, _ := dots(t, "version")
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "dots version dev")
}

func TestUnknownCommand(t *testing.T) {
	testutil.NewTestEnvironment(t)

	exitCode, stdout, stderr := dots(t, "frobnicate")
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "", stdout)
	assert.Contains(t, stderr, "Error:")
	assert.Contains(t, stderr, "frobnicate")
}

func TestCommandsRequireInit(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.AddPackage("vim", map[string]string{".vimrc": ""})

	for _, command := range []string{"install", "store", "status", "git"} {
		t.Run(command, func(t *testing.T) {
			exitCode, _, stderr := dots(t, command)
			assert.Equal(t, 1, exitCode)
			assert.Contains(t, stderr, "NOT_INITIALIZED")
			assert.Contains(t, stderr, "dots init")
		})
	}
}

func TestUnknownPackage(t *testing.T) {
	testutil.NewTestEnvironment(t)

	exitCode, _, stderr := dots(t, "files", "nope")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "PACKAGE_NOT_FOUND")
}

func TestListAndJSONFormat(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.AddPackage("zsh", map[string]string{".zshrc": ""})
	env.AddPackage("vim", map[string]string{".vimrc": ""})

	exitCode, stdout, stderr := dots(t, "list")
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "", stderr)
	assert.Equal(t, "vim\nzsh\n", stdout)

	exitCode, stdout, _ = dots(t, "--format", "json", "list")
	require.Equal(t, 0, exitCode)
	var decoded struct {
		Packages []struct {
			Name string `json:"name"`
		} `json:"packages"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	require.Len(t, decoded.Packages, 2)
	assert.Equal(t, "vim", decoded.Packages[0].Name)

	exitCode, _, stderr = dots(t, "--format", "yaml", "list")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "unknown format")
}

func TestConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	t.Setenv("DOTS_TARGET", "all")

	exitCode, stdout, _ := dots(t, "config")
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, env.DotfilesDir)
	assert.Contains(t, stdout, env.GitDir)
	assert.Regexp(t, `target = ['"]all['"]`, stdout)

	exitCode, stdout, _ = dots(t, "config", "--write")
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "config.toml")

	exitCode, _, stderr := dots(t, "config", "--write")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "ALREADY_EXISTS")
}

func TestWorkflow(t *testing.T) {
	testutil.RequireTool(t, "git", "make")
	env := testutil.NewTestEnvironment(t)
	vimrc := env.HomePath(".vimrc")

	exitCode, stdout, stderr := dots(t, "init")
	require.Equal(t, 0, exitCode, stderr)
	assert.Contains(t, stdout, "Initialized bare repository in "+env.GitDir)

	exitCode, stdout, _ = dots(t, "init")
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "Repository already exists")

	env.AddPackage("vim", map[string]string{".vimrc": "set number\n"})

	exitCode, stdout, stderr = dots(t, "files", "vim")
	require.Equal(t, 0, exitCode, stderr)
	assert.Equal(t, vimrc+"\n", stdout)

	exitCode, stdout, stderr = dots(t, "--dry-run", "install", "vim")
	require.Equal(t, 0, exitCode, stderr)
	assert.Contains(t, stdout, "Would install: vim")
	testutil.AssertNoFile(t, vimrc)

	exitCode, stdout, stderr = dots(t, "install", "vim")
	require.Equal(t, 0, exitCode, stderr)
	assert.Contains(t, stdout, "installed vim")
	testutil.AssertFileContent(t, vimrc, "set number\n")

	// The installed file is not tracked yet, so a second install refuses
	exitCode, _, stderr = dots(t, "install", "vim")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "warning: vim: "+vimrc+" exists and is not tracked")
	assert.Contains(t, stderr, "UNTRACKED_CONFLICT")

	exitCode, stdout, _ = dots(t, "status", "vim")
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "untracked")

	exitCode, stdout, stderr = dots(t, "store", "-m", "add vim", "vim")
	require.Equal(t, 0, exitCode, stderr)
	assert.Contains(t, stdout, "stored .vimrc")
	assert.Contains(t, stdout, "Committed.")

	exitCode, stdout, stderr = dots(t, "install", "vim")
	require.Equal(t, 0, exitCode, stderr)
	assert.Contains(t, stdout, "installed vim")

	exitCode, stdout, _ = dots(t, "status")
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "tracked   "+vimrc)

	exitCode, stdout, _ = dots(t, "git", "log", "--oneline")
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "add vim")

	exitCode, stdout, stderr = dots(t, "git", "rev-parse", "--verify", "--quiet", "no-such-ref")
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "", stdout)
	assert.Equal(t, "", stderr)
}

func TestForceInstall(t *testing.T) {
	testutil.RequireTool(t, "git", "make")
	env := testutil.NewTestEnvironment(t)
	env.AddPackage("tmux", map[string]string{".tmux.conf": "set -g mouse on\n"})
	testutil.CreateFile(t, env.Home, ".tmux.conf", "old\n")

	exitCode, _, stderr := dots(t, "init")
	require.Equal(t, 0, exitCode, stderr)

	exitCode, _, _ = dots(t, "install")
	assert.Equal(t, 1, exitCode)
	testutil.AssertFileContent(t, env.HomePath(".tmux.conf"), "old\n")

	exitCode, _, stderr = dots(t, "install", "--force")
	require.Equal(t, 0, exitCode, stderr)
	assert.NotContains(t, stderr, "warning:")
}
