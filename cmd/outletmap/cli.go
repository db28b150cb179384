package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/wkleong/outletmap"
	"github.com/wkleong/outletmap/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Outlets   outletmap.OutletService
	Runs      outletmap.RunService
	Extractor outletmap.Extractor
	Resolver  *outletmap.Resolver
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Extract outlet listings and ingest them into the store"`
	List   ListCmd   `cmd:"" help:"List stored outlets"`
	Ask    AskCmd    `cmd:"" help:"Ask a free-text question about the stored outlets"`
	Serve  ServeCmd  `cmd:"" help:"Serve the HTTP API"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Region string `short:"r" default:"Kuala Lumpur" help:"Region filter (case-sensitive address substring)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Location string `short:"l" help:"Filter by address substring (case-insensitive)"`
	Runs     bool   `help:"Show recent scrape runs instead of outlets"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question about the stored outlets"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr    string  `default:":8080" help:"HTTP listen address"`
	ChatRPS float64 `default:"5" help:"Chat endpoint rate limit (requests per second)"`
}
