package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tnwlsdldkdlel/crawling"
	"github.com/tnwlsdldkdlel/crawling/extract"
)

func TestSelector_Select(t *testing.T) {
	t.Parallel()

	t.Run("returns earliest full match in document order", func(t *testing.T) {
		t.Parallel()

		sentences := extract.Segment("intro. 실 and 바늘 here. 실 and 바늘 again with more 실")
		selector := &extract.Selector{}

		match, ok := selector.Select(sentences, crawling.KeywordSet{"실", "바늘"})

		require.True(t, ok)
		assert.True(t, match.Full)
		assert.Equal(t, 1, match.Sentence.Index)
		assert.Equal(t, "실 and 바늘 here", match.Sentence.Text)
	})

	t.Run("earliest full match beats later sentence with more keyword hits", func(t *testing.T) {
		t.Parallel()

		// Both sentences carry the full set; the first wins even though
		// the second repeats terms.
		sentences := []extract.Sentence{
			{Index: 0, Text: "a b"},
			{Index: 1, Text: "a a b b"},
		}
		selector := &extract.Selector{}

		match, ok := selector.Select(sentences, crawling.KeywordSet{"a", "b"})

		require.True(t, ok)
		assert.Equal(t, 0, match.Sentence.Index)
	})

	t.Run("matches terms as substrings inside larger words", func(t *testing.T) {
		t.Parallel()

		sentences := extract.Segment("사용실 : 클라우드 바늘 : 4.5mm")
		selector := &extract.Selector{}

		match, ok := selector.Select(sentences, crawling.KeywordSet{"실", "바늘"})

		require.True(t, ok)
		assert.True(t, match.Full)
	})

	t.Run("orders found keywords by first occurrence", func(t *testing.T) {
		t.Parallel()

		sentences := []extract.Sentence{{Index: 0, Text: "바늘 before 실"}}
		selector := &extract.Selector{}

		match, ok := selector.Select(sentences, crawling.KeywordSet{"실", "바늘"})

		require.True(t, ok)
		assert.Equal(t, []string{"바늘", "실"}, match.Keywords)
	})

	t.Run("reports no match when fallback disabled", func(t *testing.T) {
		t.Parallel()

		sentences := extract.Segment("only 실 here. nothing there")
		selector := &extract.Selector{}

		_, ok := selector.Select(sentences, crawling.KeywordSet{"실", "바늘"})

		assert.False(t, ok)
	})

	t.Run("fallback picks sentence with most distinct keywords", func(t *testing.T) {
		t.Parallel()

		sentences := extract.Segment("only 실 here. 실 and 바늘 but no yarn. just 바늘")
		selector := &extract.Selector{Fallback: true}

		match, ok := selector.Select(sentences, crawling.KeywordSet{"yarn", "실", "바늘"})

		require.True(t, ok)
		assert.False(t, match.Full)
		assert.Equal(t, 1, match.Sentence.Index)
		assert.Equal(t, []string{"실", "바늘"}, match.Keywords)
	})

	t.Run("fallback breaks ties by earliest document position", func(t *testing.T) {
		t.Parallel()

		sentences := []extract.Sentence{
			{Index: 0, Text: "no terms"},
			{Index: 1, Text: "has 실"},
			{Index: 2, Text: "also has 실"},
		}
		selector := &extract.Selector{Fallback: true}

		match, ok := selector.Select(sentences, crawling.KeywordSet{"실", "바늘"})

		require.True(t, ok)
		assert.Equal(t, 1, match.Sentence.Index)
	})

	t.Run("fallback with zero hits still reports no match", func(t *testing.T) {
		t.Parallel()

		sentences := extract.Segment("nothing relevant at all")
		selector := &extract.Selector{Fallback: true}

		_, ok := selector.Select(sentences, crawling.KeywordSet{"실", "바늘"})

		assert.False(t, ok)
	})

	t.Run("token matcher requires standalone tokens", func(t *testing.T) {
		t.Parallel()

		sentences := []extract.Sentence{
			{Index: 0, Text: "사용실 포함"},
			{Index: 1, Text: "실 단독"},
		}
		selector := &extract.Selector{Matcher: extract.TokenMatcher{}}

		match, ok := selector.Select(sentences, crawling.KeywordSet{"실"})

		require.True(t, ok)
		assert.Equal(t, 1, match.Sentence.Index)
	})
}

func TestMatchers(t *testing.T) {
	t.Parallel()

	t.Run("substring matcher finds nested terms", func(t *testing.T) {
		t.Parallel()

		m := extract.SubstringMatcher{}
		assert.True(t, m.Matches("사용실 : 클라우드", "실"))
		assert.False(t, m.Matches("클라우드", "실"))
	})

	t.Run("token matcher is exact", func(t *testing.T) {
		t.Parallel()

		m := extract.TokenMatcher{}
		assert.True(t, m.Matches("the yarn shop", "yarn"))
		assert.False(t, m.Matches("vineyarns", "yarn"))
	})
}
