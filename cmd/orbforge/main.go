package main

import (
	"os"

	"github.com/orbforge/go-orb-commitment/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
