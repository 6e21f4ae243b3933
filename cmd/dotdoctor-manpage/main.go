package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dotdoctor/cmd/dotdoctor"
	"github.com/arthur-debert/dotdoctor/internal/version"
)

func main() {
	rootCmd := dotdoctor.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOTDOCTOR",
		Section: "1",
		Source:  "dotdoctor " + version.Version,
		Manual:  "dotdoctor manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
