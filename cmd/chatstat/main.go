package main

import (
	"os"

	"github.com/MikeSquared-Agency/chatstat/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
