package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DarwinQVO/quotify/internal/model"
)

type QuoteRepo struct {
	pool *pgxpool.Pool
}

func NewQuoteRepo(pool *pgxpool.Pool) *QuoteRepo {
	return &QuoteRepo{pool: pool}
}

// Insert stores a new quote.
func (r *QuoteRepo) Insert(ctx context.Context, q model.Quote) error {
	query := `
		INSERT INTO quotes (id, text, citation, deep_link, timestamp_seconds, source_id, selected_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`

	_, err := r.pool.Exec(ctx, query,
		q.ID, q.Text, q.Citation, q.DeepLink, q.Timestamp, q.SourceID, q.SelectedText)
	return err
}

// FindAll returns all quotes, newest first.
func (r *QuoteRepo) FindAll(ctx context.Context) ([]model.Quote, error) {
	query := `
		SELECT id, text, citation, deep_link, timestamp_seconds, source_id, selected_text, created_at
		FROM quotes
		ORDER BY created_at DESC`

	return r.query(ctx, query)
}

// FindBySourceID returns all quotes extracted from one source, newest first.
func (r *QuoteRepo) FindBySourceID(ctx context.Context, sourceID string) ([]model.Quote, error) {
	query := `
		SELECT id, text, citation, deep_link, timestamp_seconds, source_id, selected_text, created_at
		FROM quotes
		WHERE source_id = $1
		ORDER BY created_at DESC`

	return r.query(ctx, query, sourceID)
}

// Remove deletes the given quotes and returns how many actually existed.
func (r *QuoteRepo) Remove(ctx context.Context, ids []string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM quotes WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *QuoteRepo) query(ctx context.Context, query string, args ...interface{}) ([]model.Quote, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []model.Quote
	for rows.Next() {
		var q model.Quote
		err := rows.Scan(
			&q.ID, &q.Text, &q.Citation, &q.DeepLink,
			&q.Timestamp, &q.SourceID, &q.SelectedText, &q.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}
