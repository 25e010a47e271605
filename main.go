package main

import (
	"os"

	"github.com/sadopc/tomatotask/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
