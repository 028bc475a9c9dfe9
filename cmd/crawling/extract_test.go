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

func postLoader(text string) *mock.DocumentLoader {
	return &mock.DocumentLoader{
		LoadFn: func(_ context.Context, url string) (*crawling.Document, error) {
			return &crawling.Document{
				SourceURL: url,
				Frames: []crawling.Frame{
					{URL: "https://blog.naver.com/PostView.naver?blogId=a", Text: text},
				},
			}, nil
		},
	}
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints matched sentence and saves the result", func(t *testing.T) {
		t.Parallel()

		var saved *crawling.Extraction
		extractions := &mock.ExtractionService{
			UpsertExtractionFn: func(_ context.Context, extraction *crawling.Extraction) error {
				saved = extraction
				return nil
			},
		}
		loader := postLoader("안녕하세요. 사용실 : 클라우드 (2합, 400g) 바늘 : 4.5mm. 감사합니다.")
		deps, stdout, _ := testDeps(t, loader, extractions)

		cmd := &main.ExtractCmd{URLs: []string{"https://blog.naver.com/a/1"}}
		cmd.Term = []string{"실", "바늘"}
		cmd.Keyword = "마들렌자켓"

		err := cmd.Run(deps)
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "사용실 : 클라우드")
		assert.Contains(t, stdout.String(), "Done: 1 matched, 0 failed, 1 saved")

		require.NotNil(t, saved)
		assert.True(t, saved.Success)
		assert.Equal(t, "마들렌자켓", saved.Keyword)
	})

	t.Run("reports failed URLs on stderr and keeps going", func(t *testing.T) {
		t.Parallel()

		upserts := 0
		extractions := &mock.ExtractionService{
			UpsertExtractionFn: func(_ context.Context, _ *crawling.Extraction) error {
				upserts++
				return nil
			},
		}
		loader := postLoader("오늘 날씨가 좋네요.")
		deps, stdout, stderr := testDeps(t, loader, extractions)

		cmd := &main.ExtractCmd{URLs: []string{"https://blog.naver.com/a/1"}}
		cmd.Term = []string{"실", "바늘"}

		err := cmd.Run(deps)
		require.NoError(t, err)

		assert.Contains(t, stderr.String(), "no match found")
		assert.Contains(t, stdout.String(), "Done: 0 matched, 1 failed, 1 saved")
		assert.Equal(t, 1, upserts, "failed extractions are persisted too")
	})

	t.Run("rejects an invalid term list", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t, postLoader(""), nil)

		cmd := &main.ExtractCmd{URLs: []string{"https://blog.naver.com/a/1"}}
		cmd.Term = []string{"실", ""}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, crawling.EINVALID, crawling.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("does nothing without URLs", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t, postLoader(""), nil)

		cmd := &main.ExtractCmd{}
		cmd.Term = []string{"실"}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No URLs")
	})

	t.Run("omits the saved count when persistence is skipped", func(t *testing.T) {
		t.Parallel()

		loader := postLoader("사용실 : 클라우드 바늘 : 4.5mm 입니다.")
		deps, stdout, _ := testDeps(t, loader, nil)

		cmd := &main.ExtractCmd{URLs: []string{"https://blog.naver.com/a/1"}}
		cmd.Term = []string{"실"}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Done: 1 matched, 0 failed\n")
		assert.NotContains(t, stdout.String(), "saved")
	})
}
