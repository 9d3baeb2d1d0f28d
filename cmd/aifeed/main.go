package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/univac-1/ai-info-rss-feed/internal/transport/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
