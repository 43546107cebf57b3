package sitenav

import (
	"context"
	"net/url"
	"strings"
)

// SearchRequest carries one keyword query plus the candidate origin
// sources, in resolution order: an explicit origin, a bare website
// hostname, and the transport-level Origin and Referer values.
type SearchRequest struct {
	Query        string `json:"query"`
	Origin       string `json:"origin"`
	Website      string `json:"website"`
	OriginHeader string `json:"-"`
	Referrer     string `json:"-"`
}

// SearchResponse is the ranked answer for one query.
type SearchResponse struct {
	Results            []ScoredSection `json:"results"`
	Query              string          `json:"query"`
	NeedsClarification bool            `json:"needsClarification"`
	Message            string          `json:"message,omitempty"`
}

// SearchService answers keyword queries against per-origin page indexes.
type SearchService interface {
	// Search resolves the request's origin, obtains the (possibly
	// cached) index and returns scored sections. An unresolvable origin
	// yields an EINVALID error; an empty query yields an empty response
	// without touching the index.
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// ResolveOrigin returns the origin (scheme://host[:port]) of the first
// candidate that parses as an absolute http(s) URL. Empty candidates are
// skipped. Returns EINVALID when no candidate resolves.
func ResolveOrigin(candidates ...string) (string, error) {
	for _, candidate := range candidates {
		if origin, err := NormalizeOrigin(candidate); err == nil {
			return origin, nil
		}
	}
	return "", Errorf(EINVALID, "unable to resolve a target origin from the request")
}

// NormalizeOrigin reduces a raw URL to its origin component. The input
// must be an absolute URL with an http or https scheme and a host.
func NormalizeOrigin(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", Errorf(EINVALID, "empty origin candidate")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", Errorf(EINVALID, "invalid origin candidate %q", raw)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", Errorf(EINVALID, "origin candidate %q is not an absolute http(s) URL", raw)
	}
	return u.Scheme + "://" + u.Host, nil
}
