package mock

import (
	"context"

	"github.com/tnwlsdldkdlel/crawling"
)

var _ crawling.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of crawling.ExtractionService.
type ExtractionService struct {
	UpsertExtractionFn    func(ctx context.Context, extraction *crawling.Extraction) error
	FindExtractionByURLFn func(ctx context.Context, url string) (*crawling.Extraction, error)
	FindExtractionsFn     func(ctx context.Context, filter crawling.ExtractionFilter) ([]*crawling.Extraction, error)
	DeleteExtractionFn    func(ctx context.Context, url string) error
}

func (s *ExtractionService) UpsertExtraction(ctx context.Context, extraction *crawling.Extraction) error {
	return s.UpsertExtractionFn(ctx, extraction)
}

func (s *ExtractionService) FindExtractionByURL(ctx context.Context, url string) (*crawling.Extraction, error) {
	return s.FindExtractionByURLFn(ctx, url)
}

func (s *ExtractionService) FindExtractions(ctx context.Context, filter crawling.ExtractionFilter) ([]*crawling.Extraction, error) {
	return s.FindExtractionsFn(ctx, filter)
}

func (s *ExtractionService) DeleteExtraction(ctx context.Context, url string) error {
	return s.DeleteExtractionFn(ctx, url)
}
