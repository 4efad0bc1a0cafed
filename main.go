package main

import (
	"os"

	"github.com/hyejin/orbquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
