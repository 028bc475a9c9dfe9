// Package naver implements the Naver-specific pieces of the pipeline:
// content-frame classification for the blog platform's nested-iframe
// layout, blog search discovery, and structured parsing of yarn and
// needle information from selected sentences.
package naver

import (
	"strings"

	"github.com/tnwlsdldkdlel/crawling"
)

// Ensure Classifier implements crawling.FrameClassifier at compile time.
var _ crawling.FrameClassifier = Classifier{}

// Content-frame URL signatures for Naver blogs. Posts render inside an
// iframe whose URL points at the post-view endpoint.
const (
	signaturePostView  = "PostView"
	signatureMainFrame = "mainFrame"
)

// Classifier identifies the content frame of a Naver blog page by its URL.
type Classifier struct{}

// Matches reports whether the frame URL carries a Naver post-view
// signature.
func (Classifier) Matches(frameURL string) bool {
	return strings.Contains(frameURL, signaturePostView) ||
		strings.Contains(frameURL, signatureMainFrame)
}
