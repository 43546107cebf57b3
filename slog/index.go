package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/sitenav/sitenav"
)

// Ensure LoggingIndex implements sitenav.IndexService.
var _ sitenav.IndexService = (*LoggingIndex)(nil)

// LoggingIndex wraps an IndexService with timing logging.
type LoggingIndex struct {
	next   sitenav.IndexService
	logger *slog.Logger
}

// NewLoggingIndex creates a new LoggingIndex.
func NewLoggingIndex(next sitenav.IndexService, logger *slog.Logger) *LoggingIndex {
	return &LoggingIndex{next: next, logger: logger}
}

// Get delegates to the wrapped index and logs the operation.
func (i *LoggingIndex) Get(ctx context.Context, origin string) (sections []sitenav.Section, err error) {
	defer func(begin time.Time) {
		i.logger.Info("index get",
			"origin", origin,
			"sections", len(sections),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Get(ctx, origin)
}

// Invalidate delegates to the wrapped index and logs the operation.
func (i *LoggingIndex) Invalidate(origin string) {
	i.next.Invalidate(origin)
	i.logger.Info("index invalidate", "origin", origin)
}

// Origins delegates to the wrapped index.
func (i *LoggingIndex) Origins() []string {
	return i.next.Origins()
}
