package main

import (
	"os"

	"github.com/circuitstrategies/circuitbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
