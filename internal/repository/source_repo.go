package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DarwinQVO/quotify/internal/model"
)

type SourceRepo struct {
	pool *pgxpool.Pool
}

func NewSourceRepo(pool *pgxpool.Pool) *SourceRepo {
	return &SourceRepo{pool: pool}
}

// Insert stores a new source in the pending state.
func (r *SourceRepo) Insert(ctx context.Context, src model.Source) error {
	query := `
		INSERT INTO sources (id, url, status, progress, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())`

	_, err := r.pool.Exec(ctx, query, src.ID, src.URL, src.Status, src.Progress)
	return err
}

// FindByID returns a single source by id.
func (r *SourceRepo) FindByID(ctx context.Context, id string) (*model.Source, error) {
	query := `
		SELECT id, url, status, progress, metadata, transcript, error, created_at, updated_at
		FROM sources
		WHERE id = $1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// FindAll returns all sources, newest first.
func (r *SourceRepo) FindAll(ctx context.Context) ([]model.Source, error) {
	query := `
		SELECT id, url, status, progress, metadata, transcript, error, created_at, updated_at
		FROM sources
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []model.Source
	for rows.Next() {
		src, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, *src)
	}
	return sources, rows.Err()
}

// FindIDsByStatus returns the ids of all sources in the given state.
func (r *SourceRepo) FindIDsByStatus(ctx context.Context, status model.SourceStatus) ([]string, error) {
	query := `SELECT id FROM sources WHERE status = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Update applies a partial update in a single statement so concurrent
// pipeline steps never clobber fields they did not set.
func (r *SourceRepo) Update(ctx context.Context, id string, upd model.SourceUpdate) error {
	var metaJSON, transcriptJSON []byte
	var err error
	if upd.Metadata != nil {
		if metaJSON, err = json.Marshal(upd.Metadata); err != nil {
			return err
		}
	}
	if upd.Transcript != nil {
		if transcriptJSON, err = json.Marshal(upd.Transcript); err != nil {
			return err
		}
	}

	query := `
		UPDATE sources
		SET status     = COALESCE($2, status),
		    progress   = COALESCE($3, progress),
		    metadata   = COALESCE($4, metadata),
		    transcript = COALESCE($5, transcript),
		    error      = COALESCE($6, error),
		    updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, upd.Status, upd.Progress, metaJSON, transcriptJSON, upd.Error)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ResetForRetry puts an errored source back in the pending state. The
// status guard keeps a retry from clobbering a source that completed or is
// mid-pipeline; callers see pgx.ErrNoRows when nothing was eligible.
func (r *SourceRepo) ResetForRetry(ctx context.Context, id string) error {
	query := `
		UPDATE sources
		SET status = 'pending', progress = 0, error = NULL, updated_at = now()
		WHERE id = $1 AND status = 'error'`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a source. Its quotes are intentionally left in place.
func (r *SourceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sources WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *SourceRepo) scanOne(row pgx.Row) (*model.Source, error) {
	var src model.Source
	var metaJSON, transcriptJSON []byte
	err := row.Scan(
		&src.ID, &src.URL, &src.Status, &src.Progress,
		&metaJSON, &transcriptJSON, &src.Error,
		&src.CreatedAt, &src.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(metaJSON) > 0 {
		var meta model.VideoMetadata
		if err := json.Unmarshal(metaJSON, &meta); err != nil {
			return nil, err
		}
		src.Metadata = &meta
	}
	if len(transcriptJSON) > 0 {
		var tr model.TranscriptionResult
		if err := json.Unmarshal(transcriptJSON, &tr); err != nil {
			return nil, err
		}
		src.Transcript = &tr
	}
	return &src, nil
}
