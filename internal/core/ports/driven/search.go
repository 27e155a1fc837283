package driven

import (
	"context"

	"github.com/custodia-labs/blast-util/internal/core/domain"
)

// SearchClient submits one query to the remote alignment search service.
// Search blocks until the full report is available or ctx is done.
// Failures wrap domain.ErrRemote; there is no retry.
type SearchClient interface {
	Search(ctx context.Context, query domain.QuerySequence, params domain.SearchParameters) (*domain.RawSearchResult, error)
}
