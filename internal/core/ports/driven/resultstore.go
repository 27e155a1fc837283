package driven

import (
	"context"

	"github.com/custodia-labs/blast-util/internal/core/domain"
)

// ResultStore persists summary rows to a file-backed relational store.
// Each call opens the store at storePath, writes in one transaction and
// closes it again; no handle is held between calls.
type ResultStore interface {
	// Prepare creates the folder that will hold the store at storePath.
	// It does not create the store file itself.
	Prepare(storePath string) error

	// Append inserts one results row per summary row plus one searches row.
	// Either all of them are committed or none are.
	Append(ctx context.Context, storePath, runID string, summary domain.ResultSummary) error

	// Rows returns every results row in insertion order.
	Rows(ctx context.Context, storePath string) ([]domain.SummaryRow, error)
}
