package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/sitenav/sitenav"
	"github.com/sitenav/sitenav/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(stdout, stderr io.Writer) *Dependencies {
	return &Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Config: DefaultConfig(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestRun_no_command(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := NewMain().Run(context.Background(), nil, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestRun_help(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := NewMain().Run(context.Background(), []string{"--help"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "serve")
	assert.Contains(t, stdout.String(), "crawl")
	assert.Contains(t, stdout.String(), "search")
}

func TestRun_unknown_command(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := NewMain().Run(context.Background(), []string{"bogus"}, stdout, stderr)
	assert.Error(t, err)
}

func TestCrawlCmd_prints_sections(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := testDeps(stdout, stderr)
	deps.Crawler = &mock.Crawler{
		CrawlOriginFn: func(_ context.Context, origin string) ([]sitenav.Section, error) {
			return []sitenav.Section{
				{PageURL: origin + "/", Title: "Home", Summary: "welcome", Type: sitenav.SectionH1},
			}, nil
		},
	}

	cmd := &CrawlCmd{Origin: "https://example.com"}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), "Home")
	assert.Contains(t, stdout.String(), "1 sections indexed")
	assert.Empty(t, stderr.String())
}

func TestCrawlCmd_empty_origin_index(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	deps := testDeps(stdout, &bytes.Buffer{})
	deps.Crawler = &mock.Crawler{
		CrawlOriginFn: func(_ context.Context, _ string) ([]sitenav.Section, error) {
			return nil, nil
		},
	}

	cmd := &CrawlCmd{Origin: "https://example.com"}
	require.NoError(t, cmd.Run(deps))
	assert.Contains(t, stdout.String(), "No indexable sections found.")
}

func TestSearchCmd_prints_ranked_results(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	deps := testDeps(stdout, &bytes.Buffer{})
	deps.Search = &mock.SearchService{
		SearchFn: func(_ context.Context, req sitenav.SearchRequest) (*sitenav.SearchResponse, error) {
			return &sitenav.SearchResponse{
				Results: []sitenav.ScoredSection{
					{
						Section: sitenav.Section{PageURL: "https://example.com/pricing", Title: "Pricing", Summary: "plans", Type: sitenav.SectionH1},
						Score:   9,
					},
				},
				Query: req.Query,
			}, nil
		},
	}

	cmd := &SearchCmd{Origin: "https://example.com", Query: "pricing"}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), "[9] Pricing")
	assert.Contains(t, stdout.String(), "https://example.com/pricing")
}

func TestSearchCmd_reports_errors(t *testing.T) {
	t.Parallel()

	stderr := &bytes.Buffer{}
	deps := testDeps(&bytes.Buffer{}, stderr)
	deps.Search = &mock.SearchService{
		SearchFn: func(_ context.Context, _ sitenav.SearchRequest) (*sitenav.SearchResponse, error) {
			return nil, sitenav.Errorf(sitenav.EINVALID, "unable to resolve a target origin from the request")
		},
	}

	cmd := &SearchCmd{Origin: "bogus", Query: "docs"}
	require.Error(t, cmd.Run(deps))
	assert.Contains(t, stderr.String(), "origin")
}
