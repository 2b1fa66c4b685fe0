package main

import (
	"os"

	"github.com/folio-dev/folio/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
