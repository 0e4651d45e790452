package main

import (
	"os"

	"github.com/RMcDOttawa/goAzcamVatt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
