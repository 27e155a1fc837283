package driven

// Reporter receives progress notifications from the pipeline.
type Reporter interface {
	// Searching is called before a query is submitted.
	Searching(sequenceID string)

	// Writing is called before a summary is written to the store.
	Writing(storePath string)

	// Done is called once after the last query has been written.
	Done()
}
