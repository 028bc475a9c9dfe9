// Package rod provides a DocumentLoader implementation using Chrome
// browser automation, capturing the nested-iframe layout of dynamically
// rendered blog pages.
package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/tnwlsdldkdlel/crawling"
)

// Ensure Loader implements crawling.DocumentLoader at compile time.
var _ crawling.DocumentLoader = (*Loader)(nil)

// frameTextJS extracts the rendered text of a frame's body.
const frameTextJS = `() => document.body ? document.body.innerText : ""`

// Loader loads rendered pages with a headless Chrome browser and captures
// the top-level document plus every iframe as frames.
// Loader is safe for concurrent use by multiple goroutines.
type Loader struct {
	browser *rod.Browser
}

// Option configures a Loader.
type Option func(*options)

type options struct {
	headless bool
}

// WithHeadless controls whether the browser runs headless. Defaults to true.
func WithHeadless(headless bool) Option {
	return func(o *options) {
		o.headless = headless
	}
}

// NewLoader creates a Loader that launches a Chrome browser.
// Close must be called when the Loader is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewLoader(opts ...Option) (*Loader, error) {
	o := options{headless: true}
	for _, opt := range opts {
		opt(&o)
	}

	l := launcher.New().Headless(o.headless)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Loader{browser: browser}, nil
}

// Load navigates to the URL, waits for the page to render, and captures
// every frame. The top-level document is the first frame; iframes follow
// in DOM order. Frames whose content cannot be read (cross-origin
// restrictions, detached nodes) are skipped.
func (l *Loader) Load(ctx context.Context, url string) (*crawling.Document, error) {
	page, err := l.open(ctx, url)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	doc := &crawling.Document{SourceURL: url}

	info, err := page.Info()
	if err != nil {
		return nil, err
	}
	text, err := frameText(page)
	if err != nil {
		return nil, err
	}
	doc.Frames = append(doc.Frames, crawling.Frame{URL: info.URL, Text: text})

	elements, err := page.Elements("iframe")
	if err != nil {
		return nil, err
	}
	for _, el := range elements {
		frame, err := el.Frame()
		if err != nil {
			continue
		}
		frameInfo, err := frame.Info()
		if err != nil {
			continue
		}
		frameBody, err := frameText(frame)
		if err != nil {
			continue
		}
		doc.Frames = append(doc.Frames, crawling.Frame{URL: frameInfo.URL, Text: frameBody})
	}

	return doc, nil
}

// Fetch navigates to the URL and returns the rendered top-level HTML.
func (l *Loader) Fetch(ctx context.Context, url string) (string, error) {
	page, err := l.open(ctx, url)
	if err != nil {
		return "", err
	}
	defer page.Close()

	return page.HTML()
}

// Close releases browser resources.
func (l *Loader) Close() error {
	return l.browser.Close()
}

// open creates a page bound to ctx and navigates it to the URL.
func (l *Loader) open(ctx context.Context, url string) (*rod.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := l.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		page.Close()
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		page.Close()
		return nil, err
	}

	return page, nil
}

// frameText evaluates the frame's rendered body text.
func frameText(page *rod.Page) (string, error) {
	obj, err := page.Eval(frameTextJS)
	if err != nil {
		return "", err
	}
	return obj.Value.Str(), nil
}
