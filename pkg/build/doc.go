// Package build drives make for dots packages.
//
// A package's install goal is expected to have the installed files as
// targets, written against $(HOME):
//
//	install: $(HOME)/.vimrc
//
//	$(HOME)/.vimrc: vimrc
//		cp $< $@
//
// Files lists what a package would install without touching the disk: it
// runs a dry, unconditional build with basic debugging enabled and
// collects every target make says it must remake. Targets inside the home
// directory, and outside the package itself, form the file list.
package build
