package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/cropdb/internal/ports/secondary"
)

// RunRepository implements secondary.RunRepository with SQLite.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new SQLite import-run repository.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Record persists one applied importer invocation.
func (r *RunRepository) Record(ctx context.Context, rec *secondary.ImportRunRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO import_runs
			(run_id, tool, source, upserted, updated, skipped, issues, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.RunID,
		rec.Tool,
		nullString(rec.Source),
		rec.Upserted,
		rec.Updated,
		rec.Skipped,
		rec.Issues,
		rec.StartedAt,
		nullString(rec.FinishedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to record import run: %w", err)
	}
	return nil
}

// ListRecent retrieves the most recent runs, newest first.
func (r *RunRepository) ListRecent(ctx context.Context, limit int) ([]*secondary.ImportRunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT run_id, tool, source, upserted, updated, skipped, issues, started_at, finished_at
		FROM import_runs
		ORDER BY started_at DESC, run_id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list import runs: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ImportRunRecord
	for rows.Next() {
		var source, finishedAt sql.NullString
		record := &secondary.ImportRunRecord{}
		if err := rows.Scan(
			&record.RunID, &record.Tool, &source,
			&record.Upserted, &record.Updated, &record.Skipped, &record.Issues,
			&record.StartedAt, &finishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan import run: %w", err)
		}
		record.Source = source.String
		record.FinishedAt = finishedAt.String
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate import runs: %w", err)
	}

	return records, nil
}

// Ensure RunRepository implements the interface
var _ secondary.RunRepository = (*RunRepository)(nil)
