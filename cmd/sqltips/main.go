// Package main provides the sqltips CLI.
package main

import (
	"os"

	"github.com/pawelkonior/SQL-tips-and-tricks/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
