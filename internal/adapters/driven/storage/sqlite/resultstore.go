package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/custodia-labs/blast-util/internal/core/domain"
	"github.com/custodia-labs/blast-util/internal/core/ports/driven"
)

// Ensure ResultStore implements the interface.
var _ driven.ResultStore = (*ResultStore)(nil)

// ResultStore implements driven.ResultStore on per-input SQLite files.
// It holds no connection; every call is an independent
// open, write, commit and close cycle.
type ResultStore struct {
	now func() time.Time
}

// NewResultStore creates a new SQLite result store.
func NewResultStore() *ResultStore {
	return &ResultStore{now: time.Now}
}

// Prepare creates the folder that will hold storePath.
func (r *ResultStore) Prepare(storePath string) error {
	if err := os.MkdirAll(filepath.Dir(storePath), 0755); err != nil {
		return fmt.Errorf("%w: creating output folder: %v", domain.ErrOutputUnavailable, err)
	}
	return nil
}

// Append writes the summary to the store at storePath in one transaction.
// The transaction is rolled back if any insert fails, so a query's rows are
// either all present or all absent.
func (r *ResultStore) Append(ctx context.Context, storePath, runID string, summary domain.ResultSummary) (err error) {
	store, err := Open(ctx, storePath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrOutputUnavailable, storePath, err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %v", domain.ErrOutputUnavailable, storePath, cerr)
		}
	}()

	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback() //nolint:errcheck // original error wins
		}
	}()

	if err = insertRows(ctx, tx, summary.Rows); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO searches (run_id, sequence_id, rid, database, database_length, hit_count, skipped_hits, searched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, summary.Query.ID, nullString(summary.RequestID), nullString(summary.Database),
		summary.DatabaseLength, len(summary.Rows), summary.SkippedHits,
		r.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing results: %w", err)
	}
	return nil
}

func insertRows(ctx context.Context, tx *sql.Tx, rows []domain.SummaryRow) error {
	if len(rows) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (sequence_id, description, percent_id, e_value)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := range rows {
		row := &rows[i]
		if _, err := stmt.ExecContext(ctx, row.SequenceID, row.Description, row.PercentID, row.EValue); err != nil {
			return fmt.Errorf("inserting result %d: %w", i+1, err)
		}
	}
	return nil
}

// Rows returns every results row in insertion order.
func (r *ResultStore) Rows(ctx context.Context, storePath string) ([]domain.SummaryRow, error) {
	store, err := Open(ctx, storePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrOutputUnavailable, storePath, err)
	}
	defer store.Close()

	rows, err := store.db.QueryContext(ctx, `
		SELECT sequence_id, description, percent_id, e_value
		FROM results ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var out []domain.SummaryRow //nolint:prealloc // size unknown from query
	for rows.Next() {
		var row domain.SummaryRow
		if err := rows.Scan(&row.SequenceID, &row.Description, &row.PercentID, &row.EValue); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating results: %w", err)
	}
	return out, nil
}

// nullString converts empty strings to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
