// Package driving defines the interface the CLI uses to start a BLAST run.
// This is the "driving" port in hexagonal architecture terminology.
//
// BlastService is implemented in internal/core/services.
package driving
