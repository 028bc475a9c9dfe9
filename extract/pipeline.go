package extract

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/tnwlsdldkdlel/crawling"
)

// Pipeline runs the content-extraction steps against one loaded document.
// It is a pure function of its inputs: no shared mutable state, safe for
// use from any number of concurrent workers.
type Pipeline struct {
	// Classifier identifies the content frame among the document's frames.
	Classifier crawling.FrameClassifier

	// Matcher is the term containment policy. Defaults to SubstringMatcher.
	Matcher crawling.TermMatcher

	// Parser, if set, derives structured fields from the selected sentence.
	Parser crawling.SentenceParser

	// Fallback enables partial-match selection when no sentence contains
	// the full keyword set.
	Fallback bool
}

// Run extracts the keyword-matching sentence from the document. The
// contract is total: every input produces an Extraction, never an error.
// Frame, segmentation and match failures are represented as Success=false
// results with a descriptive ErrorMessage.
func (p *Pipeline) Run(doc *crawling.Document, terms crawling.KeywordSet, keyword string) *crawling.Extraction {
	out := &crawling.Extraction{
		SourceURL:     doc.SourceURL,
		Keyword:       keyword,
		KeywordsFound: []string{},
	}

	frame, ok := ResolveContentFrame(doc.Frames, p.Classifier)
	if !ok {
		out.ErrorMessage = "frame not found: no frame matched the content signature"
		return out
	}
	out.ContentHash = hashContent(frame.Text)

	sentences := Segment(frame.Text)
	if len(sentences) == 0 {
		out.ErrorMessage = "no match found: content frame contained no sentences"
		return out
	}

	selector := Selector{Matcher: p.Matcher, Fallback: p.Fallback}
	match, ok := selector.Select(sentences, terms)
	if !ok {
		out.ErrorMessage = fmt.Sprintf("no match found: no sentence contained the keywords %s",
			strings.Join(terms, ", "))
		return out
	}

	data := crawling.SentenceData{
		Sentence: match.Sentence.Text,
		Keywords: match.Keywords,
	}
	if p.Parser != nil {
		parsed := p.Parser.Parse(match.Sentence.Text)
		data.Yarn = parsed.Yarn
		data.Needle = parsed.Needle
	}

	out.Sentence = &data
	out.KeywordsFound = match.Keywords
	if match.Full {
		out.Success = true
	} else {
		out.ErrorMessage = fmt.Sprintf("partial match: sentence contained %d of %d keywords",
			len(match.Keywords), len(terms))
	}
	return out
}

// hashContent computes an xxhash of the resolved frame text, used to
// detect content changes between runs of the same URL.
func hashContent(text string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(text))
}
