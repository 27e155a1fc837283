package domain

// RunConfig is the explicit configuration of one pipeline run.
// Paths are expected to be absolute; the driving adapter resolves them
// against its working directory.
type RunConfig struct {
	// InputFile is the FASTA file to read queries from.
	InputFile string

	// OutputFolder receives the result store. Created if missing.
	OutputFolder string

	// Params are shared by every query of the run.
	Params SearchParameters
}

// StorePath returns the result store path for this run.
func (c RunConfig) StorePath() string {
	return StorePath(c.OutputFolder, c.InputFile)
}

// RunReport describes a completed (or partially completed) run.
type RunReport struct {
	// RunID identifies the run in the searches table.
	RunID string

	// StorePath is the SQLite file the rows were written to.
	StorePath string

	// Queries is the number of query sequences whose rows were committed.
	Queries int

	// Rows is the number of result rows committed.
	Rows int

	// SkippedHits is the number of hits dropped for lack of sub-alignments.
	SkippedHits int
}
