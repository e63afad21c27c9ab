package main

import (
	"os"

	"github.com/futbolquiz/futbolquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
