package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dots/internal/cli"
	"github.com/arthur-debert/dots/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd(cli.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})

	header := &doc.GenManHeader{
		Title:   "DOTS",
		Section: "1",
		Source:  "dots " + version.Version,
		Manual:  "dots manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
