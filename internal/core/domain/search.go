package domain

// Default search settings, applied when neither a flag nor the
// configuration file provides a value.
const (
	DefaultProgram  = "blastn"
	DefaultDatabase = "nr"
	DefaultLimit    = 100
	DefaultEValue   = 10.0
)

// KnownMatrices lists the substitution matrices offered on the command line.
// The list is informational; values outside it are passed through unchanged.
var KnownMatrices = []string{"PAM30", "PAM70", "BLOSUM80", "BLOSUM45"}

// SearchParameters configures the remote search.
// Built once per run and shared read-only across all queries.
type SearchParameters struct {
	// Program is the BLAST program name (e.g. blastn).
	Program string

	// Database is the remote database identifier (e.g. nr).
	Database string

	// Limit is the maximum number of hits requested per query.
	Limit int

	// Matrix is an optional substitution matrix name.
	// Empty lets the service choose.
	Matrix string

	// EValue is the expect-value cutoff.
	EValue float64
}

// DefaultSearchParameters returns the parameters used when nothing is configured.
func DefaultSearchParameters() SearchParameters {
	return SearchParameters{
		Program:  DefaultProgram,
		Database: DefaultDatabase,
		Limit:    DefaultLimit,
		EValue:   DefaultEValue,
	}
}

// HSP is a high-scoring segment pair: one sub-alignment of a hit.
type HSP struct {
	// Identities is the number of identical positions in the alignment.
	Identities int

	// AlignLength is the length of the alignment including gaps.
	AlignLength int

	// BitScore is the normalised alignment score.
	BitScore float64

	// Score is the raw alignment score.
	Score float64

	// EValue is the expect value of this sub-alignment.
	EValue float64
}

// AlignmentHit is one matched database entry for a query.
type AlignmentHit struct {
	// Title is the hit identifier followed by its definition line.
	Title string

	// Accession is the database accession of the matched entry.
	Accession string

	// Length is the length of the matched database sequence.
	Length int

	// HSPs holds the sub-alignments in the order reported by the service.
	HSPs []HSP
}

// BestHSP returns the sub-alignment with the highest identity count.
// The first one wins on ties. ok is false when the hit has no HSPs.
func (h AlignmentHit) BestHSP() (best HSP, ok bool) {
	for i, hsp := range h.HSPs {
		if i == 0 || hsp.Identities > best.Identities {
			best = hsp
		}
	}
	return best, len(h.HSPs) > 0
}

// Description is the one-line summary of a hit as listed in the report header.
type Description struct {
	Title         string
	BitScore      float64
	EValue        float64
	NumAlignments int
}

// RawSearchResult is the structured report returned for one query.
type RawSearchResult struct {
	// RequestID is the service-assigned identifier of the search.
	RequestID string

	// Descriptions lists the hits in rank order.
	Descriptions []Description

	// Hits holds the alignments in rank order.
	Hits []AlignmentHit

	// Database is the name of the searched database.
	Database string

	// DatabaseLength is the total number of letters in the database.
	DatabaseLength int64

	// QueryLength is the query length as seen by the service.
	QueryLength int

	// Message carries an informational note from the service (e.g. "No hits found").
	Message string
}
