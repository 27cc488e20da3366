package main

import (
	"os"

	"slnmap/cmd"
	"slnmap/term"
)

func main() {
	if err := cmd.Execute(); err != nil {
		term.Errorf("%v", err)
		os.Exit(1)
	}
}
