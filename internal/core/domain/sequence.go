package domain

// QuerySequence is a single record from the input FASTA file.
// It is immutable once read.
type QuerySequence struct {
	// ID is the first word of the FASTA header line.
	ID string

	// Description is the remainder of the header line, if any.
	Description string

	// Residues is the nucleotide sequence.
	Residues string
}

// Len returns the number of residues in the sequence.
func (q QuerySequence) Len() int {
	return len(q.Residues)
}

// IsEmpty reports whether the record carries no residues.
func (q QuerySequence) IsEmpty() bool {
	return len(q.Residues) == 0
}
