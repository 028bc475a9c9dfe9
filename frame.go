package crawling

import "context"

// Frame is one rendering context of a loaded page: its URL and the visible
// text it rendered. Frames are immutable once captured.
type Frame struct {
	URL  string
	Text string
}

// Document is the set of frames belonging to one loaded page, in the order
// the browser exposes them (top-level document first, then iframes).
type Document struct {
	SourceURL string
	Frames    []Frame
}

// FrameClassifier decides whether a frame URL identifies the content frame
// holding the article body. Implementations encode platform-specific
// signatures (e.g., Naver's PostView endpoint).
type FrameClassifier interface {
	Matches(frameURL string) bool
}

// DocumentLoader loads rendered pages. Implementations may use browser
// automation to handle JavaScript-rendered content and nested iframes.
type DocumentLoader interface {
	// Load navigates to the URL, waits for the page to render, and
	// captures every frame's URL and visible text.
	// The context controls timeout and cancellation.
	Load(ctx context.Context, url string) (*Document, error)

	// Fetch navigates to the URL and returns the rendered top-level HTML.
	// Used for pages whose markup is parsed directly (e.g., search results).
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the loader is no longer needed.
	Close() error
}

// DomainLimiter rate-limits requests on a per-domain basis.
type DomainLimiter interface {
	// Wait blocks until a request to the domain is allowed, or the
	// context is canceled.
	Wait(ctx context.Context, domain string) error
}
