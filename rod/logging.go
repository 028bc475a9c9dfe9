package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/tnwlsdldkdlel/crawling"
)

// Ensure LoggingLoader implements crawling.DocumentLoader.
var _ crawling.DocumentLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a DocumentLoader with debug logging.
type LoggingLoader struct {
	next   crawling.DocumentLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next crawling.DocumentLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load logs the URL and captured frame count and delegates to the wrapped
// loader.
func (l *LoggingLoader) Load(ctx context.Context, url string) (doc *crawling.Document, err error) {
	defer func(begin time.Time) {
		frames := 0
		if doc != nil {
			frames = len(doc.Frames)
		}
		l.logger.Info("load",
			"url", url,
			"frames", frames,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, url)
}

// Fetch logs the URL being fetched and delegates to the wrapped loader.
func (l *LoggingLoader) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Fetch(ctx, url)
}

// Close delegates to the wrapped loader.
func (l *LoggingLoader) Close() error {
	return l.next.Close()
}
