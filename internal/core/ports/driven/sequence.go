package driven

import "github.com/custodia-labs/blast-util/internal/core/domain"

// SequenceReader yields query records one at a time.
// The sequence is lazy and can only be restarted by reopening the file.
type SequenceReader interface {
	// Next returns the next record, or io.EOF after the last one.
	Next() (domain.QuerySequence, error)

	// Close releases the underlying file.
	Close() error
}

// SequenceOpener opens a SequenceReader for a file path.
// A missing path fails with domain.ErrInputNotFound.
type SequenceOpener interface {
	Open(path string) (SequenceReader, error)
}
