package main

import (
	"os"

	"github.com/plt-rs/plt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
