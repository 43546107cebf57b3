// Command sitenav runs the single-origin page indexer and keyword
// search service.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sitenav/sitenav/crawl"
	"github.com/sitenav/sitenav/goquery"
	navhttp "github.com/sitenav/sitenav/http"
	"github.com/sitenav/sitenav/mem"
	"github.com/sitenav/sitenav/prom"
	"github.com/sitenav/sitenav/search"
	navslog "github.com/sitenav/sitenav/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitenav"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitenav --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := DefaultConfig()
	if cli.Config != "" {
		if cfg, err = LoadConfig(cli.Config); err != nil {
			return err
		}
	}
	deps.Config = cfg
	deps.Logger = newLogger(stderr, cfg.LogLevel)
	deps.Metrics = prom.New(nil)

	wireServices(deps)

	return kongCtx.Run(deps)
}

// wireServices assembles the crawler, the cache and the search service
// from the configuration.
func wireServices(deps *Dependencies) {
	cfg := deps.Config

	opts := []navhttp.Option{navhttp.WithTimeout(cfg.Crawler.Timeout.Std())}
	if cfg.Crawler.UserAgent != "" {
		opts = append(opts, navhttp.WithUserAgent(cfg.Crawler.UserAgent))
	}
	fetcher := navhttp.NewFetcher(opts...)
	instrumented := prom.NewFetcher(fetcher, deps.Metrics)

	deps.Crawler = &crawl.Crawler{
		Fetcher:     navslog.NewLoggingFetcher(instrumented, deps.Logger.With("component", "crawl")),
		Sections:    goquery.NewSectionExtractor(),
		Links:       goquery.NewLinkExtractor(),
		Sitemaps:    navhttp.NewSitemapSource(nil),
		Limiter:     crawl.NewOriginLimiter(cfg.Crawler.RPS),
		MaxPages:    cfg.Crawler.MaxPages,
		MaxDepth:    cfg.Crawler.MaxDepth,
		Concurrency: cfg.Crawler.Concurrency,
	}

	index := mem.NewIndex(deps.Crawler, cfg.CacheTTL.Std())
	index.OnHit = deps.Metrics.CacheHitsTotal.Inc
	index.OnMiss = deps.Metrics.CacheMissesTotal.Inc
	deps.Index = navslog.NewLoggingIndex(index, deps.Logger.With("component", "index"))

	deps.Search = search.NewService(deps.Index, deps.Logger)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
