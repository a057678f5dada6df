package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/templater/cmd/templater"
	"github.com/arthur-debert/templater/internal/version"
)

// Usage: templater-manpage [DIR]
// Without DIR the page is written to stdout, otherwise DIR/templater.1 is created.
func main() {
	rootCmd := templater.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TEMPLATER",
		Section: "1",
		Source:  "templater " + version.Version,
		Manual:  "User Commands",
	}
	if built, err := time.Parse(time.RFC3339, version.Date); err == nil {
		header.Date = &built
	}

	var err error
	if len(os.Args) > 1 {
		dir := os.Args[1]
		if err = os.MkdirAll(dir, 0755); err == nil {
			err = doc.GenManTree(rootCmd, header, dir)
		}
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
