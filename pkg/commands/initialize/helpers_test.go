package initialize_test

import (
	"github.com/arthur-debert/dots/pkg/config"
	"github.com/arthur-debert/dots/pkg/core"
	"github.com/arthur-debert/dots/pkg/runner"
	"github.com/arthur-debert/dots/pkg/testutil"
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
