package main

import (
	"fmt"
	"os"

	"github.com/pluqqy/fieldgroups/cmd/commands"
)

// Version is set during build with -ldflags
var version = "dev"

func main() {
	root := commands.NewRootCommand(version, commands.LaunchEditor)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
