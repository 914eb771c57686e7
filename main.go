package main

import (
	"os"

	"github.com/arendjr/phebe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
