package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DarwinQVO/quotify/internal/model"
)

type StatsRepo struct {
	pool *pgxpool.Pool
}

func NewStatsRepo(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// Collect gathers collection-wide counts in one round trip per table.
func (r *StatsRepo) Collect(ctx context.Context) (*model.StatsResponse, error) {
	stats := &model.StatsResponse{
		SourcesByStatus: make(map[string]int),
	}

	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM sources GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.SourcesByStatus[status] = count
		stats.TotalSources += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM quotes`).Scan(&stats.TotalQuotes)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
