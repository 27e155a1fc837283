package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blast-util/internal/core/domain"
)

func testSummary(id string, rows ...domain.SummaryRow) domain.ResultSummary {
	return domain.ResultSummary{
		Query:          domain.QuerySequence{ID: id, Residues: "ACGT"},
		Rows:           rows,
		Database:       "nr",
		DatabaseLength: 1000,
		RequestID:      "RID-" + id,
	}
}

func TestResultStore_AppendAndRows(t *testing.T) {
	store := NewResultStore()
	ctx := context.Background()

	row := domain.SummaryRow{SequenceID: "seq1", Description: "Hit A", PercentID: 50, EValue: 0.01}
	require.NoError(t, store.Append(ctx, "/out/a.fa_blast_results.db", "run-1", testSummary("seq1", row)))

	rows, err := store.Rows(ctx, "/out/a.fa_blast_results.db")
	require.NoError(t, err)
	assert.Equal(t, []domain.SummaryRow{row}, rows)

	searches := store.Searches("/out/a.fa_blast_results.db")
	require.Len(t, searches, 1)
	assert.Equal(t, "run-1", searches[0].RunID)
	assert.Equal(t, "RID-seq1", searches[0].RequestID)
	assert.Equal(t, 1, searches[0].HitCount)
}

func TestResultStore_StoresAreIsolated(t *testing.T) {
	store := NewResultStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "a.db", "r", testSummary("x", domain.SummaryRow{SequenceID: "x"})))
	require.NoError(t, store.Append(ctx, "b.db", "r", testSummary("y")))

	rows, err := store.Rows(ctx, "b.db")
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.ElementsMatch(t, []string{"a.db", "b.db"}, store.Stores())
}

func TestResultStore_Prepare(t *testing.T) {
	store := NewResultStore()
	require.NoError(t, store.Prepare("/out/dir/x.db"))
	assert.True(t, store.Prepared("/out/dir"))
	assert.False(t, store.Prepared("/elsewhere"))
}

func TestResultStore_FailWith(t *testing.T) {
	store := NewResultStore()
	ctx := context.Background()
	boom := errors.New("disk full")
	store.FailWith(1, boom)

	require.NoError(t, store.Append(ctx, "a.db", "r", testSummary("one")))
	err := store.Append(ctx, "a.db", "r", testSummary("two"))
	assert.ErrorIs(t, err, boom)
	assert.Len(t, store.Searches("a.db"), 1)
}
