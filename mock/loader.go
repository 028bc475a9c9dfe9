package mock

import (
	"context"

	"github.com/tnwlsdldkdlel/crawling"
)

var _ crawling.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of crawling.DocumentLoader.
type DocumentLoader struct {
	LoadFn  func(ctx context.Context, url string) (*crawling.Document, error)
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (l *DocumentLoader) Load(ctx context.Context, url string) (*crawling.Document, error) {
	return l.LoadFn(ctx, url)
}

func (l *DocumentLoader) Fetch(ctx context.Context, url string) (string, error) {
	return l.FetchFn(ctx, url)
}

func (l *DocumentLoader) Close() error {
	if l.CloseFn == nil {
		return nil
	}
	return l.CloseFn()
}
