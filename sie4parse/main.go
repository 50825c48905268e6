package main

import (
	"log/slog"
	"os"

	"github.com/plenert-macdonald/sie/sie4parse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		slog.Error("sie4parse failed", "error", err)
		os.Exit(1)
	}
}
