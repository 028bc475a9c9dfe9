package extract

import (
	"context"
	"time"

	"github.com/tnwlsdldkdlel/crawling"
)

// LoadFunc is the signature for a document load function.
type LoadFunc func(ctx context.Context, url string) (*crawling.Document, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for load retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// LoadWithRetryDelays attempts to load a document with backoff retry
// logic, making one initial attempt plus one retry per delay. The logger
// function, if provided, is called for each retry attempt.
func LoadWithRetryDelays(ctx context.Context, url string, load LoadFunc, logger LogFunc, delays []time.Duration) (*crawling.Document, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		doc, err := load(ctx, url)
		if err == nil {
			return doc, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
