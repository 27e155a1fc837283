package memory

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/blast-util/internal/core/domain"
	"github.com/custodia-labs/blast-util/internal/core/ports/driven"
)

// Ensure ResultStore implements the interface.
var _ driven.ResultStore = (*ResultStore)(nil)

// SearchRecord is the in-memory counterpart of a searches table row.
type SearchRecord struct {
	RunID          string
	SequenceID     string
	RequestID      string
	Database       string
	DatabaseLength int64
	HitCount       int
	SkippedHits    int
}

// ResultStore is an in-memory implementation of driven.ResultStore.
// Stores are keyed by path, so distinct inputs never share rows.
type ResultStore struct {
	mu       sync.RWMutex
	folders  map[string]bool
	rows     map[string][]domain.SummaryRow
	searches map[string][]SearchRecord

	// failErr, when set, is returned by every Append after the first
	// failAfter successful ones.
	failAfter int
	failErr   error
	appends   int
}

// NewResultStore creates a new in-memory result store.
func NewResultStore() *ResultStore {
	return &ResultStore{
		folders:  make(map[string]bool),
		rows:     make(map[string][]domain.SummaryRow),
		searches: make(map[string][]SearchRecord),
	}
}

// FailWith makes every Append after the first n fail with err.
func (s *ResultStore) FailWith(n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAfter = n
	s.failErr = err
}

// Prepare records the store's folder as created.
func (s *ResultStore) Prepare(storePath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folders[filepath.Dir(storePath)] = true
	return nil
}

// Append stores the summary rows under storePath.
func (s *ResultStore) Append(_ context.Context, storePath, runID string, summary domain.ResultSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil && s.appends >= s.failAfter {
		return s.failErr
	}
	s.appends++

	s.rows[storePath] = append(s.rows[storePath], summary.Rows...)
	s.searches[storePath] = append(s.searches[storePath], SearchRecord{
		RunID:          runID,
		SequenceID:     summary.Query.ID,
		RequestID:      summary.RequestID,
		Database:       summary.Database,
		DatabaseLength: summary.DatabaseLength,
		HitCount:       len(summary.Rows),
		SkippedHits:    summary.SkippedHits,
	})
	return nil
}

// Rows returns the rows stored under storePath in insertion order.
func (s *ResultStore) Rows(_ context.Context, storePath string) ([]domain.SummaryRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.rows[storePath]
	result := make([]domain.SummaryRow, len(rows))
	copy(result, rows)
	return result, nil
}

// Searches returns the search records stored under storePath.
func (s *ResultStore) Searches(storePath string) []SearchRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]SearchRecord, len(s.searches[storePath]))
	copy(result, s.searches[storePath])
	return result
}

// Prepared reports whether Prepare was called for a store in folder.
func (s *ResultStore) Prepared(folder string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.folders[folder]
}

// Stores returns the paths of every store that received an append.
func (s *ResultStore) Stores() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.searches))
	for path := range s.searches {
		paths = append(paths, path)
	}
	return paths
}
