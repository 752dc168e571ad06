package main

import (
	"os"

	"github.com/financify-dev/financify/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
