// Package extract implements the content-extraction pipeline: it resolves
// the content frame of a loaded document, segments the frame text into
// sentences, selects the sentence satisfying the keyword policy, and
// assembles the outcome into an extraction record. The Runner orchestrates
// the pipeline across many source URLs.
package extract

import "strings"

// Sentence is an ordered, zero-based-indexed unit of text derived from one
// frame's payload. Index preserves document order for tie-breaking.
type Sentence struct {
	Index int
	Text  string
}

// sentenceDelim is the literal boundary the segmenter splits on. This is a
// heuristic, not a linguistic boundary detector: a period without a
// following space leaves sentences merged, and abbreviations containing
// the delimiter split incorrectly.
const sentenceDelim = ". "

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Segment converts a raw text block into an ordered sequence of sentences.
// Line breaks are normalized to spaces before splitting, segments are
// trimmed, and empty segments produced by consecutive delimiters are
// dropped. Returns nil for empty or whitespace-only input.
func Segment(text string) []Sentence {
	var sentences []Sentence
	for _, part := range strings.Split(lineBreaks.Replace(text), sentenceDelim) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sentences = append(sentences, Sentence{Index: len(sentences), Text: part})
	}
	return sentences
}
