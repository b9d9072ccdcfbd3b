package main

import (
	"os"

	"github.com/pulibrary/marc-copyright/cmd/marc-copyright/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
