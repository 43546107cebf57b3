package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/sitenav/sitenav"
	"github.com/sitenav/sitenav/prom"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Config  Config
	Logger  *slog.Logger
	Metrics *prom.Metrics

	Crawler sitenav.Crawler
	Index   sitenav.IndexService
	Search  sitenav.SearchService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" help:"Path to a YAML config file" type:"path"`

	Serve  ServeCmd  `cmd:"" help:"Run the HTTP search service"`
	Crawl  CrawlCmd  `cmd:"" help:"Crawl one origin and print its index"`
	Search SearchCmd `cmd:"" help:"Search an origin from the command line"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Origin string `arg:"" help:"Origin URL, e.g. https://example.com"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Origin string `arg:"" help:"Origin URL, e.g. https://example.com"`
	Query  string `arg:"" help:"Keyword query"`
}
