package main_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tnwlsdldkdlel/crawling"
	main "github.com/tnwlsdldkdlel/crawling/cmd/crawling"
	"github.com/tnwlsdldkdlel/crawling/mock"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("discovers posts and extracts from them", func(t *testing.T) {
		t.Parallel()

		var saved []*crawling.Extraction
		extractions := &mock.ExtractionService{
			UpsertExtractionFn: func(_ context.Context, extraction *crawling.Extraction) error {
				saved = append(saved, extraction)
				return nil
			},
		}
		loader := postLoader("사용실 : 클라우드 바늘 : 4.5mm 입니다.")
		loader.FetchFn = func(_ context.Context, url string) (string, error) {
			return `<a href="https://blog.naver.com/a/1">post</a>`, nil
		}
		deps, stdout, _ := testDeps(t, loader, extractions)

		cmd := &main.SearchCmd{Query: "마들렌자켓", Pages: 1}
		cmd.Term = []string{"실", "바늘"}

		err := cmd.Run(deps)
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), `Found 1 post(s) for "마들렌자켓"`)
		assert.Contains(t, stdout.String(), "Done: 1 matched, 0 failed, 1 saved")

		require.Len(t, saved, 1)
		assert.Equal(t, "마들렌자켓", saved[0].Keyword, "query doubles as the stored keyword")
	})

	t.Run("explicit keyword overrides the query", func(t *testing.T) {
		t.Parallel()

		var saved *crawling.Extraction
		extractions := &mock.ExtractionService{
			UpsertExtractionFn: func(_ context.Context, extraction *crawling.Extraction) error {
				saved = extraction
				return nil
			},
		}
		loader := postLoader("사용실 : 클라우드 바늘 : 4.5mm 입니다.")
		loader.FetchFn = func(_ context.Context, url string) (string, error) {
			return `<a href="https://blog.naver.com/a/1">post</a>`, nil
		}
		deps, _, _ := testDeps(t, loader, extractions)

		cmd := &main.SearchCmd{Query: "마들렌자켓", Pages: 1}
		cmd.Term = []string{"실"}
		cmd.Keyword = "여름니트"

		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, saved)
		assert.Equal(t, "여름니트", saved.Keyword)
	})

	t.Run("stops cleanly when the search finds nothing", func(t *testing.T) {
		t.Parallel()

		loader := postLoader("")
		loader.FetchFn = func(_ context.Context, url string) (string, error) {
			return "<html><body>no results</body></html>", nil
		}
		deps, stdout, _ := testDeps(t, loader, nil)

		cmd := &main.SearchCmd{Query: "마들렌자켓", Pages: 1}
		cmd.Term = []string{"실"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "Found 0 post(s)")
		assert.NotContains(t, stdout.String(), "Done:")
	})
}
