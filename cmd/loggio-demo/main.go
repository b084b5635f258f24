// Package main is the entry point for the loggio demo CLI.
package main

import (
	"os"

	"github.com/xcollantes/loggio/cmd/loggio-demo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
