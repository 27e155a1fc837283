// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline to run:
//
//   - SequenceOpener / SequenceReader: Lazy access to FASTA query records
//   - SearchClient: Remote sequence-alignment search (NCBI BLAST)
//   - ResultStore: Per-input SQLite persistence of summary rows
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Reporter: Progress lines for the user. Without it the run is silent.
//
// ConfigStore is read by the CLI, not by services: an empty store means
// built-in defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
