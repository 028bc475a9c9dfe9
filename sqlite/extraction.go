package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tnwlsdldkdlel/crawling"
)

// Compile-time interface verification.
var _ crawling.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements crawling.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// UpsertExtraction inserts the extraction, or overwrites the existing row
// with the same URL. The original created_at is preserved on update;
// updated_at is bumped either way.
func (s *ExtractionService) UpsertExtraction(ctx context.Context, extraction *crawling.Extraction) error {
	if err := extraction.Validate(); err != nil {
		return err
	}

	sentence, err := marshalSentence(extraction.Sentence)
	if err != nil {
		return err
	}
	keywords, err := json.Marshal(keywordsOrEmpty(extraction.KeywordsFound))
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	var createdAt, updatedAt string
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO extractions (url, keyword, extracted_sentence, success, error_message, keywords_found, content_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			keyword = excluded.keyword,
			extracted_sentence = excluded.extracted_sentence,
			success = excluded.success,
			error_message = excluded.error_message,
			keywords_found = excluded.keywords_found,
			content_hash = excluded.content_hash,
			updated_at = excluded.updated_at
		RETURNING id, created_at, updated_at
	`, extraction.SourceURL, extraction.Keyword, sentence, extraction.Success,
		extraction.ErrorMessage, string(keywords), extraction.ContentHash, now, now).
		Scan(&extraction.ID, &createdAt, &updatedAt)
	if err != nil {
		return err
	}

	if extraction.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return fmt.Errorf("failed to parse created_at: %w", err)
	}
	if extraction.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return nil
}

// FindExtractionByURL retrieves an extraction by source URL.
func (s *ExtractionService) FindExtractionByURL(ctx context.Context, url string) (*crawling.Extraction, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, keyword, extracted_sentence, success, error_message, keywords_found, content_hash, created_at, updated_at
		FROM extractions
		WHERE url = ?
	`, url)

	extraction, err := scanExtraction(row.Scan)
	if err == sql.ErrNoRows {
		return nil, crawling.Errorf(crawling.ENOTFOUND, "extraction not found for URL %q", url)
	}
	if err != nil {
		return nil, err
	}
	return extraction, nil
}

// FindExtractions retrieves extractions matching the filter, most recently
// updated first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter crawling.ExtractionFilter) ([]*crawling.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, url, keyword, extracted_sentence, success, error_message, keywords_found, content_hash, created_at, updated_at FROM extractions WHERE 1=1`)

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Keyword != nil {
		query.WriteString(" AND keyword = ?")
		args = append(args, *filter.Keyword)
	}
	if filter.Success != nil {
		query.WriteString(" AND success = ?")
		args = append(args, *filter.Success)
	}

	query.WriteString(" ORDER BY updated_at DESC, id DESC")

	// SQLite requires LIMIT when OFFSET is present; -1 means no limit.
	if filter.Limit > 0 || filter.Offset > 0 {
		limit := filter.Limit
		if limit <= 0 {
			limit = -1
		}
		query.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*crawling.Extraction
	for rows.Next() {
		extraction, err := scanExtraction(rows.Scan)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, extraction)
	}

	return extractions, rows.Err()
}

// DeleteExtraction permanently removes an extraction by source URL.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, url string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE url = ?", url)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return crawling.Errorf(crawling.ENOTFOUND, "extraction not found for URL %q", url)
	}

	return nil
}

// scanExtraction scans one extractions row using the given scan function.
func scanExtraction(scan func(dest ...any) error) (*crawling.Extraction, error) {
	var extraction crawling.Extraction
	var sentence sql.NullString
	var keywords, createdAt, updatedAt string

	if err := scan(&extraction.ID, &extraction.SourceURL, &extraction.Keyword,
		&sentence, &extraction.Success, &extraction.ErrorMessage,
		&keywords, &extraction.ContentHash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if sentence.Valid {
		var data crawling.SentenceData
		if err := json.Unmarshal([]byte(sentence.String), &data); err != nil {
			return nil, fmt.Errorf("failed to decode extracted_sentence: %w", err)
		}
		extraction.Sentence = &data
	}
	if err := json.Unmarshal([]byte(keywords), &extraction.KeywordsFound); err != nil {
		return nil, fmt.Errorf("failed to decode keywords_found: %w", err)
	}

	var err error
	if extraction.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if extraction.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return &extraction, nil
}

// marshalSentence encodes the structured payload, mapping nil to SQL NULL.
func marshalSentence(data *crawling.SentenceData) (any, error) {
	if data == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extracted_sentence: %w", err)
	}
	return string(encoded), nil
}

func keywordsOrEmpty(keywords []string) []string {
	if keywords == nil {
		return []string{}
	}
	return keywords
}
