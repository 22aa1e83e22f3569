package main

import (
	"os"

	"github.com/wonny/govdash/cmd/govdash/commands"
)

// main is the entry point for the govdash CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/govdash [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
