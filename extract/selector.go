package extract

import (
	"sort"
	"strings"

	"github.com/tnwlsdldkdlel/crawling"
)

// Ensure matchers implement crawling.TermMatcher at compile time.
var (
	_ crawling.TermMatcher = SubstringMatcher{}
	_ crawling.TermMatcher = TokenMatcher{}
)

// SubstringMatcher matches a term anywhere inside a sentence, including
// inside larger words ("실" matches inside "사용실"). This is the policy
// the Naver pipeline uses; overlapping and nested hits are accepted.
type SubstringMatcher struct{}

// Matches reports whether the sentence contains the term as a substring.
func (SubstringMatcher) Matches(sentence, term string) bool {
	return strings.Contains(sentence, term)
}

// TokenMatcher matches a term only as an exact whitespace-delimited token.
type TokenMatcher struct{}

// Matches reports whether the term appears as a standalone token.
func (TokenMatcher) Matches(sentence, term string) bool {
	for _, token := range strings.Fields(sentence) {
		if token == term {
			return true
		}
	}
	return false
}

// Match is a selected sentence together with the terms found in it,
// ordered by first occurrence within the sentence. Full reports whether
// every required term was present.
type Match struct {
	Sentence Sentence
	Keywords []string
	Full     bool
}

// Selector scans sentences in document order and picks the extraction
// target. The zero value uses substring matching with fallback disabled.
type Selector struct {
	// Matcher is the term containment policy. Defaults to SubstringMatcher.
	Matcher crawling.TermMatcher

	// Fallback enables partial-match selection: when no sentence contains
	// the full keyword set, the sentence with the most distinct terms wins,
	// ties broken by earliest document position.
	Fallback bool
}

// Select returns the first sentence in document order containing every
// term of the keyword set. When no full match exists and Fallback is
// enabled, it returns the best partial match instead. The second return
// value is false when nothing matched.
func (s *Selector) Select(sentences []Sentence, terms crawling.KeywordSet) (Match, bool) {
	matcher := s.Matcher
	if matcher == nil {
		matcher = SubstringMatcher{}
	}

	var best Match
	for _, sentence := range sentences {
		var found []string
		for _, term := range terms {
			if matcher.Matches(sentence.Text, term) {
				found = append(found, term)
			}
		}

		// First full match wins; scanning stops here.
		if len(found) == len(terms) {
			return Match{
				Sentence: sentence,
				Keywords: orderByOccurrence(sentence.Text, found),
				Full:     true,
			}, true
		}

		if s.Fallback && len(found) > len(best.Keywords) {
			best = Match{
				Sentence: sentence,
				Keywords: orderByOccurrence(sentence.Text, found),
			}
		}
	}

	if len(best.Keywords) > 0 {
		return best, true
	}
	return Match{}, false
}

// orderByOccurrence sorts terms by their first occurrence offset within
// the sentence, preserving keyword-set order for equal offsets.
func orderByOccurrence(sentence string, terms []string) []string {
	ordered := make([]string, len(terms))
	copy(ordered, terms)
	sort.SliceStable(ordered, func(i, j int) bool {
		return strings.Index(sentence, ordered[i]) < strings.Index(sentence, ordered[j])
	})
	return ordered
}
