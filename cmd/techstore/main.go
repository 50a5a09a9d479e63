package main

import (
	"os"

	"github.com/techstore/techstore-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
