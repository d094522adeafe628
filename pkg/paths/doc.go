// Package paths provides centralized path handling for dots.
//
// A Paths value is built from the resolved configuration and answers the
// questions the commands keep asking: where a package lives, whether a file
// sits inside the home work tree, and what its work-tree relative name is
// (the form git expects).
//
// # Usage
//
//	p := paths.New(cfg.Home, cfg.DotfilesDir, cfg.GitDir)
//	vim := p.PackagePath("vim")          // /home/user/.dotfiles/vim
//	rel, ok := p.HomeRelative("/home/user/.vimrc") // ".vimrc", true
package paths
