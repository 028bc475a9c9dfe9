package extract

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/tnwlsdldkdlel/crawling"
	"golang.org/x/sync/errgroup"
)

// Runner orchestrates extraction across many source URLs. Each URL is an
// independent unit of work: the pipeline itself holds no shared state, so
// URLs are processed by a bounded worker pool. The destination datastore
// is the only shared resource; results are persisted sequentially after
// collection.
type Runner struct {
	Loader      crawling.DocumentLoader
	Pipeline    *Pipeline
	Extractions crawling.ExtractionService // nil skips persistence
	Limiter     crawling.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a run.
type Result struct {
	Succeeded int // extractions with a full keyword match
	Failed    int // extractions that failed (navigation, frame, or match)
	Saved     int // rows upserted to the datastore
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type       ProgressType
	Completed  int
	Total      int
	URL        string
	Extraction *crawling.Extraction
	Error      error
}

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// runResult holds the outcome of processing a single URL.
type runResult struct {
	position   int
	url        string
	extraction *crawling.Extraction
}

// Run extracts from every URL and persists the results. Navigation faults
// are translated into failed extractions rather than aborting the run, so
// every URL yields exactly one Extraction. Returns an error only for
// invalid inputs or persistence failures.
func (r *Runner) Run(ctx context.Context, urls []string, terms crawling.KeywordSet, keyword string, progress ProgressFunc) (*Result, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan runResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			i, u := i, u
			g.Go(func() error {
				resultCh <- runResult{
					position:   i,
					url:        u,
					extraction: r.processURL(gctx, u, terms, keyword),
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in position order.
	results := make([]runResult, len(urls))
	var out Result
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.extraction.Success {
			out.Succeeded++
		} else {
			out.Failed++
		}
		if progress != nil {
			eventType := ProgressCompleted
			if !result.extraction.Success {
				eventType = ProgressFailed
			}
			progress(ProgressEvent{
				Type:       eventType,
				Completed:  int(completed.Load()),
				Total:      total,
				URL:        result.url,
				Extraction: result.extraction,
			})
		}
	}

	// Persist sequentially; SQLite supports a single writer.
	var saveErrs []error
	if r.Extractions != nil {
		for _, result := range results {
			if err := r.Extractions.UpsertExtraction(ctx, result.extraction); err != nil {
				saveErrs = append(saveErrs, fmt.Errorf("saving %s: %w", result.url, err))
				continue
			}
			out.Saved++
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &out, errors.Join(saveErrs...)
}

// processURL loads and extracts a single URL. Load errors become failed
// extractions so the caller can branch on Success without special-casing.
func (r *Runner) processURL(ctx context.Context, rawURL string, terms crawling.KeywordSet, keyword string) *crawling.Extraction {
	if r.Limiter != nil {
		if u, err := url.Parse(rawURL); err == nil {
			if err := r.Limiter.Wait(ctx, u.Host); err != nil {
				return navigationFailure(rawURL, keyword, err)
			}
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	doc, err := LoadWithRetryDelays(ctx, rawURL, r.Loader.Load, nil, delays)
	if err != nil {
		return navigationFailure(rawURL, keyword, err)
	}

	return r.Pipeline.Run(doc, terms, keyword)
}

func navigationFailure(url, keyword string, err error) *crawling.Extraction {
	return &crawling.Extraction{
		SourceURL:     url,
		Keyword:       keyword,
		KeywordsFound: []string{},
		ErrorMessage:  fmt.Sprintf("navigation: %v", err),
	}
}
