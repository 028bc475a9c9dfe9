// Package slog provides logging decorators for crawling services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/tnwlsdldkdlel/crawling"
)

// Ensure LoggingExtractionService implements crawling.ExtractionService.
var _ crawling.ExtractionService = (*LoggingExtractionService)(nil)

// LoggingExtractionService wraps an ExtractionService with debug logging.
type LoggingExtractionService struct {
	next   crawling.ExtractionService
	logger *slog.Logger
}

// NewLoggingExtractionService creates a new LoggingExtractionService.
func NewLoggingExtractionService(next crawling.ExtractionService, logger *slog.Logger) *LoggingExtractionService {
	return &LoggingExtractionService{next: next, logger: logger}
}

// UpsertExtraction delegates to the wrapped service and logs the operation.
func (s *LoggingExtractionService) UpsertExtraction(ctx context.Context, extraction *crawling.Extraction) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("upsert extraction",
			"url", extraction.SourceURL,
			"success", extraction.Success,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpsertExtraction(ctx, extraction)
}

// FindExtractionByURL delegates to the wrapped service.
func (s *LoggingExtractionService) FindExtractionByURL(ctx context.Context, url string) (*crawling.Extraction, error) {
	return s.next.FindExtractionByURL(ctx, url)
}

// FindExtractions delegates to the wrapped service and logs the operation.
func (s *LoggingExtractionService) FindExtractions(ctx context.Context, filter crawling.ExtractionFilter) (extractions []*crawling.Extraction, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find extractions",
			"count", len(extractions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindExtractions(ctx, filter)
}

// DeleteExtraction delegates to the wrapped service and logs the operation.
func (s *LoggingExtractionService) DeleteExtraction(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete extraction",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteExtraction(ctx, url)
}
