package crawling

import (
	"context"
	"time"
)

// SentenceData is the structured payload stored in the extracted_sentence
// column. Earlier schema generations persisted a flat sentence string; the
// current generation stores keyword-tagged JSON.
type SentenceData struct {
	Sentence string   `json:"sentence,omitempty"`
	Yarn     string   `json:"yarn,omitempty"`
	Needle   string   `json:"needle,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Extraction is the outcome of running the pipeline against one source
// URL. Immutable after assembly; persisted via ExtractionService.
//
// Success is true iff Sentence is non-nil and KeywordsFound, treated as a
// set, equals the full keyword set of the run. A partial-fallback hit
// populates Sentence but leaves Success false.
type Extraction struct {
	ID            int64         `json:"id"`
	SourceURL     string        `json:"sourceUrl"`
	Keyword       string        `json:"keyword"`
	Sentence      *SentenceData `json:"extractedSentence"`
	Success       bool          `json:"success"`
	ErrorMessage  string        `json:"errorMessage,omitempty"`
	KeywordsFound []string      `json:"keywordsFound"`
	ContentHash   string        `json:"contentHash,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.SourceURL == "" {
		return Errorf(EINVALID, "extraction source URL required")
	}
	if e.Success && e.Sentence == nil {
		return Errorf(EINVALID, "successful extraction requires a sentence")
	}
	return nil
}

// KeywordSet is an ordered set of required terms, case-sensitive, fixed
// per extraction run.
type KeywordSet []string

// Validate returns an error if the keyword set is empty or contains blank
// or duplicate terms.
func (k KeywordSet) Validate() error {
	if len(k) == 0 {
		return Errorf(EINVALID, "keyword set requires at least one term")
	}
	seen := make(map[string]struct{}, len(k))
	for _, term := range k {
		if term == "" {
			return Errorf(EINVALID, "keyword set contains a blank term")
		}
		if _, ok := seen[term]; ok {
			return Errorf(EINVALID, "keyword set contains duplicate term %q", term)
		}
		seen[term] = struct{}{}
	}
	return nil
}

// TermMatcher tests whether a sentence contains a term. Implementations
// encode the containment policy (substring vs exact token).
type TermMatcher interface {
	Matches(sentence, term string) bool
}

// SentenceParser derives structured fields from a selected sentence.
// Implementations encode platform-specific conventions for how yarn and
// needle information is written out.
type SentenceParser interface {
	Parse(sentence string) SentenceData
}

// ExtractionService represents a service for persisting and querying
// extraction results. Persistence is keyed by source URL: writing a second
// result for the same URL overwrites the first.
type ExtractionService interface {
	// UpsertExtraction inserts the extraction, or updates the existing
	// row with the same URL. Sets ID, CreatedAt and UpdatedAt.
	UpsertExtraction(ctx context.Context, extraction *Extraction) error

	// FindExtractionByURL retrieves an extraction by source URL.
	// Returns ENOTFOUND if no extraction exists for the URL.
	FindExtractionByURL(ctx context.Context, url string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtraction permanently removes an extraction by source URL.
	// Returns ENOTFOUND if no extraction exists for the URL.
	DeleteExtraction(ctx context.Context, url string) error
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	URL     *string `json:"url"`
	Keyword *string `json:"keyword"`
	Success *bool   `json:"success"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
