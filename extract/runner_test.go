package extract_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tnwlsdldkdlel/crawling"
	"github.com/tnwlsdldkdlel/crawling/extract"
	"github.com/tnwlsdldkdlel/crawling/mock"
	"github.com/tnwlsdldkdlel/crawling/naver"
)

// loaderFor returns a mock loader serving each URL a post document with
// the given content-frame text.
func loaderFor(texts map[string]string) *mock.DocumentLoader {
	return &mock.DocumentLoader{
		LoadFn: func(ctx context.Context, url string) (*crawling.Document, error) {
			text, ok := texts[url]
			if !ok {
				return nil, errors.New("connection refused")
			}
			doc := postDocument(text)
			doc.SourceURL = url
			return doc, nil
		},
	}
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	terms := crawling.KeywordSet{"실", "바늘"}

	t.Run("extracts and persists every URL", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		saved := make(map[string]*crawling.Extraction)
		extractions := &mock.ExtractionService{
			UpsertExtractionFn: func(ctx context.Context, e *crawling.Extraction) error {
				mu.Lock()
				defer mu.Unlock()
				saved[e.SourceURL] = e
				return nil
			},
		}

		runner := &extract.Runner{
			Loader: loaderFor(map[string]string{
				"https://blog.naver.com/a/1": "intro. 실 과 바늘 문장. outro.",
				"https://blog.naver.com/b/2": "nothing relevant here.",
			}),
			Pipeline:    &extract.Pipeline{Classifier: naver.Classifier{}},
			Extractions: extractions,
			RetryDelays: []time.Duration{},
		}

		result, err := runner.Run(context.Background(),
			[]string{"https://blog.naver.com/a/1", "https://blog.naver.com/b/2"},
			terms, "마들렌자켓", nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Succeeded)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 2, result.Saved)

		require.Len(t, saved, 2)
		assert.True(t, saved["https://blog.naver.com/a/1"].Success)
		assert.False(t, saved["https://blog.naver.com/b/2"].Success)
	})

	t.Run("translates navigation faults into failed extractions", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var saved []*crawling.Extraction
		extractions := &mock.ExtractionService{
			UpsertExtractionFn: func(ctx context.Context, e *crawling.Extraction) error {
				mu.Lock()
				defer mu.Unlock()
				saved = append(saved, e)
				return nil
			},
		}

		runner := &extract.Runner{
			Loader:      loaderFor(map[string]string{}),
			Pipeline:    &extract.Pipeline{Classifier: naver.Classifier{}},
			Extractions: extractions,
			RetryDelays: []time.Duration{},
		}

		result, err := runner.Run(context.Background(),
			[]string{"https://blog.naver.com/down/1"}, terms, "", nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)

		require.Len(t, saved, 1)
		assert.False(t, saved[0].Success)
		assert.Contains(t, saved[0].ErrorMessage, "navigation")
		assert.Contains(t, saved[0].ErrorMessage, "connection refused")
	})

	t.Run("skips persistence without a service", func(t *testing.T) {
		t.Parallel()

		runner := &extract.Runner{
			Loader: loaderFor(map[string]string{
				"https://blog.naver.com/a/1": "실 바늘 문장.",
			}),
			Pipeline:    &extract.Pipeline{Classifier: naver.Classifier{}},
			RetryDelays: []time.Duration{},
		}

		result, err := runner.Run(context.Background(),
			[]string{"https://blog.naver.com/a/1"}, terms, "", nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Succeeded)
		assert.Equal(t, 0, result.Saved)
	})

	t.Run("returns persistence errors", func(t *testing.T) {
		t.Parallel()

		extractions := &mock.ExtractionService{
			UpsertExtractionFn: func(ctx context.Context, e *crawling.Extraction) error {
				return errors.New("disk full")
			},
		}

		runner := &extract.Runner{
			Loader: loaderFor(map[string]string{
				"https://blog.naver.com/a/1": "실 바늘 문장.",
			}),
			Pipeline:    &extract.Pipeline{Classifier: naver.Classifier{}},
			Extractions: extractions,
			RetryDelays: []time.Duration{},
		}

		result, err := runner.Run(context.Background(),
			[]string{"https://blog.naver.com/a/1"}, terms, "", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.Equal(t, 0, result.Saved)
	})

	t.Run("rejects an invalid keyword set", func(t *testing.T) {
		t.Parallel()

		runner := &extract.Runner{
			Loader:   loaderFor(nil),
			Pipeline: &extract.Pipeline{Classifier: naver.Classifier{}},
		}

		_, err := runner.Run(context.Background(), nil, crawling.KeywordSet{}, "", nil)

		require.Error(t, err)
		assert.Equal(t, crawling.EINVALID, crawling.ErrorCode(err))
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		runner := &extract.Runner{
			Loader: loaderFor(map[string]string{
				"https://blog.naver.com/a/1": "실 바늘 문장.",
			}),
			Pipeline:    &extract.Pipeline{Classifier: naver.Classifier{}},
			RetryDelays: []time.Duration{},
		}

		var events []extract.ProgressType
		progress := func(event extract.ProgressEvent) {
			events = append(events, event.Type)
		}

		_, err := runner.Run(context.Background(),
			[]string{"https://blog.naver.com/a/1"}, terms, "", progress)

		require.NoError(t, err)
		assert.Equal(t, []extract.ProgressType{
			extract.ProgressStarted,
			extract.ProgressCompleted,
			extract.ProgressFinished,
		}, events)
	})

	t.Run("waits on the per-domain limiter", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var domains []string
		limiter := &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, domain string) error {
				mu.Lock()
				defer mu.Unlock()
				domains = append(domains, domain)
				return nil
			},
		}

		runner := &extract.Runner{
			Loader: loaderFor(map[string]string{
				"https://blog.naver.com/a/1": "실 바늘 문장.",
			}),
			Pipeline:    &extract.Pipeline{Classifier: naver.Classifier{}},
			Limiter:     limiter,
			RetryDelays: []time.Duration{},
		}

		_, err := runner.Run(context.Background(),
			[]string{"https://blog.naver.com/a/1"}, terms, "", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"blog.naver.com"}, domains)
	})
}
