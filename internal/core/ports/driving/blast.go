package driving

import (
	"context"

	"github.com/custodia-labs/blast-util/internal/core/domain"
)

// BlastService runs the search pipeline over one input file.
type BlastService interface {
	// Run reads every query of cfg.InputFile, searches it and appends the
	// summary rows to the run's store, one query at a time.
	// The returned report is non-nil whenever the store path was resolved,
	// including on error, and counts what was committed.
	Run(ctx context.Context, cfg domain.RunConfig) (*domain.RunReport, error)
}
