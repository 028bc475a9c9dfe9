package mock

import (
	"context"

	"github.com/tnwlsdldkdlel/crawling"
)

var (
	_ crawling.FrameClassifier = (*FrameClassifier)(nil)
	_ crawling.TermMatcher     = (*TermMatcher)(nil)
	_ crawling.DomainLimiter   = (*DomainLimiter)(nil)
)

// FrameClassifier is a mock implementation of crawling.FrameClassifier.
type FrameClassifier struct {
	MatchesFn func(frameURL string) bool
}

func (c *FrameClassifier) Matches(frameURL string) bool {
	return c.MatchesFn(frameURL)
}

// TermMatcher is a mock implementation of crawling.TermMatcher.
type TermMatcher struct {
	MatchesFn func(sentence, term string) bool
}

func (m *TermMatcher) Matches(sentence, term string) bool {
	return m.MatchesFn(sentence, term)
}

// DomainLimiter is a mock implementation of crawling.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
