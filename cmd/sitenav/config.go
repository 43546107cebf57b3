package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sitenav/sitenav/crawl"
	navhttp "github.com/sitenav/sitenav/http"
	"github.com/sitenav/sitenav/mem"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration. Zero values fall
// back to the defaults below, so a config file only needs the keys it
// wants to change.
type Config struct {
	Addr     string        `yaml:"addr"`
	CacheTTL duration      `yaml:"cacheTTL"`
	LogLevel string        `yaml:"logLevel"`
	Crawler  CrawlerConfig `yaml:"crawler"`
}

// CrawlerConfig controls the per-origin crawl bounds.
type CrawlerConfig struct {
	MaxPages    int      `yaml:"maxPages"`
	MaxDepth    int      `yaml:"maxDepth"`
	Concurrency int      `yaml:"concurrency"`
	RPS         float64  `yaml:"rps"`
	Timeout     duration `yaml:"timeout"`
	UserAgent   string   `yaml:"userAgent"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Addr:     ":8080",
		CacheTTL: duration(mem.DefaultTTL),
		LogLevel: "info",
		Crawler: CrawlerConfig{
			RPS:     crawl.DefaultRPS,
			Timeout: duration(navhttp.DefaultFetchTimeout),
		},
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// duration wraps time.Duration so YAML values can use the "10m" form.
type duration time.Duration

func (d *duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = duration(parsed)
	return nil
}

func (d duration) Std() time.Duration {
	return time.Duration(d)
}
