package domain

import (
	"fmt"
	"path/filepath"
)

// StoreSuffix is appended to the input file's base name to form the store file name.
const StoreSuffix = "_blast_results.db"

// SummaryRow is one persisted line of the results table.
type SummaryRow struct {
	SequenceID  string
	Description string
	PercentID   float64
	EValue      float64
}

// ResultSummary is the compact form of a search result for one query.
type ResultSummary struct {
	// Query is the searched sequence.
	Query QuerySequence

	// Rows holds one row per summarised hit, in rank order.
	Rows []SummaryRow

	// SkippedHits counts hits dropped because they carried no sub-alignments.
	SkippedHits int

	// Database echoes the searched database name.
	Database string

	// DatabaseLength echoes the searched database size in letters.
	DatabaseLength int64

	// RequestID echoes the service-assigned search identifier.
	RequestID string
}

// PercentIdentity returns 100 * identities / queryLength without rounding.
func PercentIdentity(identities, queryLength int) (float64, error) {
	if queryLength <= 0 {
		return 0, fmt.Errorf("%w: query length %d", ErrExtraction, queryLength)
	}
	return 100 * float64(identities) / float64(queryLength), nil
}

// StorePath returns the path of the result store for an input file.
// It depends only on the output folder and the input file's base name.
func StorePath(outputFolder, inputFile string) string {
	return filepath.Join(outputFolder, filepath.Base(inputFile)+StoreSuffix)
}
