package main

import (
	"os"

	"sigvault/cmd/sigvault/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
