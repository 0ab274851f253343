package main

import (
	"os"

	"garner/cmd/garner/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
