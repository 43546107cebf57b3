// Package sitenav provides a single-origin page index and keyword search
// service. It crawls the pages of one web origin breadth-first, extracts
// heading and body sections, caches the resulting index per origin with a
// TTL, and ranks sections against keyword queries with synonym and stem
// expansion. It is the backing service for a page-navigation assistant
// that points users at "section X on page Y".
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or mechanism
// (e.g., goquery/, http/, mem/, gin/).
package sitenav
