// Package search implements the keyword search service on top of the
// origin index cache and the section scorer.
package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sitenav/sitenav"
)

// Response messages.
const (
	msgEmptyQuery    = "Empty query."
	msgNoMatches     = "No relevant matches found."
	msgClarification = "Multiple sections match equally well. Please refine your query."
)

// Ensure Service implements sitenav.SearchService at compile time.
var _ sitenav.SearchService = (*Service)(nil)

// Service answers keyword queries. It resolves the target origin from
// the request's candidate sources, pulls the (possibly cached) index
// for it and ranks the indexed sections against the query.
type Service struct {
	index  sitenav.IndexService
	logger *slog.Logger
}

// NewService creates a Service backed by the given index. A nil logger
// falls back to slog.Default.
func NewService(index sitenav.IndexService, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		index:  index,
		logger: logger.With("component", "search"),
	}
}

// Search resolves the request's origin, obtains the index and returns
// scored sections with a human-readable message where the result set
// alone would be ambiguous.
func (s *Service) Search(ctx context.Context, req sitenav.SearchRequest) (*sitenav.SearchResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return &sitenav.SearchResponse{
			Results: []sitenav.ScoredSection{},
			Query:   req.Query,
			Message: msgEmptyQuery,
		}, nil
	}

	origin, err := sitenav.ResolveOrigin(req.Origin, coerceWebsite(req.Website), req.OriginHeader, req.Referrer)
	if err != nil {
		return nil, err
	}

	sections, err := s.index.Get(ctx, origin)
	if err != nil {
		if code := sitenav.ErrorCode(err); code == sitenav.EINTERNAL {
			s.logger.Error("index lookup failed", "origin", origin, "error", err)
		}
		return nil, err
	}

	results, needsClarification := sitenav.ScoreSections(sections, query)
	if results == nil {
		results = []sitenav.ScoredSection{}
	}

	resp := &sitenav.SearchResponse{
		Results:            results,
		Query:              query,
		NeedsClarification: needsClarification,
	}
	switch {
	case len(results) == 0:
		resp.Message = msgNoMatches
	case needsClarification:
		resp.Message = msgClarification
	}

	s.logger.Debug("search completed",
		"origin", origin,
		"query", query,
		"results", len(results),
		"needs_clarification", needsClarification,
	)
	return resp, nil
}

// coerceWebsite turns a bare hostname like "example.com" into an
// https URL so it can participate in origin resolution. Values that
// already carry a scheme pass through unchanged.
func coerceWebsite(website string) string {
	website = strings.TrimSpace(website)
	if website == "" {
		return ""
	}
	if strings.Contains(website, "://") {
		return website
	}
	return "https://" + website
}
