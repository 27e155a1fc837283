package services

import (
	"fmt"

	"github.com/custodia-labs/blast-util/internal/core/domain"
	"github.com/custodia-labs/blast-util/internal/logger"
)

// Summarize reduces a raw search result to one row per hit.
//
// For each hit the sub-alignment with the most identities is kept (the
// first one on ties) and its percent identity is computed against the full
// query length. Hits without sub-alignments are skipped and counted in
// SkippedHits. A query of length zero fails with domain.ErrExtraction
// unless there is nothing to summarise.
func Summarize(raw *domain.RawSearchResult, query domain.QuerySequence) (domain.ResultSummary, error) {
	if raw == nil {
		return domain.ResultSummary{}, fmt.Errorf("%w: no search result for %s", domain.ErrExtraction, query.ID)
	}

	summary := domain.ResultSummary{
		Query:          query,
		Rows:           make([]domain.SummaryRow, 0, len(raw.Hits)),
		Database:       raw.Database,
		DatabaseLength: raw.DatabaseLength,
		RequestID:      raw.RequestID,
	}

	for i, hit := range raw.Hits {
		best, ok := hit.BestHSP()
		if !ok {
			logger.Warn("Skipping hit %d (%s) of %s: no sub-alignments", i+1, hit.Title, query.ID)
			summary.SkippedHits++
			continue
		}

		pct, err := domain.PercentIdentity(best.Identities, query.Len())
		if err != nil {
			return domain.ResultSummary{}, fmt.Errorf("summarising %s: %w", query.ID, err)
		}

		summary.Rows = append(summary.Rows, domain.SummaryRow{
			SequenceID:  query.ID,
			Description: hit.Title,
			PercentID:   pct,
			EValue:      best.EValue,
		})
	}

	return summary, nil
}
