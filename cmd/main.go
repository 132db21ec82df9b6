// Package main runs the pet-loans API and its maintenance commands.
package main

import (
	"os"

	_ "github.com/lib/pq"

	"github.com/go-petr/pet-loans/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
