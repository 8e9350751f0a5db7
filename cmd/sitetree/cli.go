package main

import (
	"context"
	"io"

	"github.com/kwrobel/sitetree/export"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Exporter *export.Exporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string `short:"c" help:"Path to a YAML config file (default: sitetree.yaml if present)"`
	Root     string `short:"r" help:"Directory to scan (default: current directory)"`
	Name     string `help:"Root node label (default: base name of the scan root)"`
	Strategy string `short:"s" help:"Classification strategy: meta or index (default: meta)"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`

	Export ExportCmd `cmd:"" default:"1" help:"Export the site tree as a JSON artifact"`
	Print  PrintCmd  `cmd:"" help:"Print the site tree as a plain text outline"`
}

// ExportCmd is the "export" subcommand and the default command.
type ExportCmd struct {
	Output string `short:"o" help:"Artifact path (default: data/sitetree.json)"`
	DryRun bool   `help:"Walk and classify without writing the artifact"`
}

// PrintCmd is the "print" subcommand.
type PrintCmd struct{}
