// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// BlastService runs the read, search, summarise and persist pipeline.
// Summarize reduces a raw search report to per-hit statistics.
package services
