// Package domain defines the core entities of blast-util.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - QuerySequence: A labelled DNA record read from the input file
//   - SearchParameters: The remote search settings shared by a run
//   - AlignmentHit / HSP: One matched database entry and its sub-alignments
//   - RawSearchResult: The parsed report returned by the search service
//   - ResultSummary / SummaryRow: The compact per-hit statistics that get persisted
//   - RunConfig / RunReport: Input and outcome of one pipeline run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
