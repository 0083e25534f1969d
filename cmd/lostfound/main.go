package main

import (
	"os"

	"github.com/aleeshaaz/lostfound/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
