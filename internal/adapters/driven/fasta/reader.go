// Package fasta provides the Input Reader: a lazy SequenceReader over
// multi-record FASTA files, backed by the biogo FASTA parser.
package fasta

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"

	"github.com/custodia-labs/blast-util/internal/core/domain"
	"github.com/custodia-labs/blast-util/internal/core/ports/driven"
)

// Ensure Opener and Reader implement the interfaces.
var (
	_ driven.SequenceOpener = Opener{}
	_ driven.SequenceReader = (*Reader)(nil)
)

// Opener opens FASTA files from the local filesystem.
type Opener struct{}

// Open checks that path exists and returns a Reader positioned at its first record.
func (Opener) Open(path string) (driven.SequenceReader, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: opening %s: %v", domain.ErrMalformedInput, path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: stat %s: %v", domain.ErrMalformedInput, path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrMalformedInput, path)
	}
	return NewReader(f, path), nil
}

// Reader yields one QuerySequence per FASTA record.
type Reader struct {
	src    io.Reader
	name   string
	parser *biofasta.Reader
	count  int
}

// NewReader wraps src. name is used in error messages.
// If src is an io.Closer it is closed by Close.
func NewReader(src io.Reader, name string) *Reader {
	template := linear.NewSeq("", nil, alphabet.DNAgapped)
	return &Reader{
		src:    src,
		name:   name,
		parser: biofasta.NewReader(src, template),
	}
}

// Next parses and returns the next record. It returns io.EOF after the last one.
func (r *Reader) Next() (domain.QuerySequence, error) {
	s, err := r.parser.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.QuerySequence{}, io.EOF
		}
		return domain.QuerySequence{}, fmt.Errorf("%w: %s: record %d: %v", domain.ErrMalformedInput, r.name, r.count+1, err)
	}
	r.count++
	return toQuery(s), nil
}

// Close closes the underlying file, if any.
func (r *Reader) Close() error {
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func toQuery(s seq.Sequence) domain.QuerySequence {
	q := domain.QuerySequence{
		ID:          s.Name(),
		Description: s.Description(),
	}
	if l, ok := s.(*linear.Seq); ok {
		residues := make([]byte, len(l.Seq))
		for i, letter := range l.Seq {
			residues[i] = byte(letter)
		}
		q.Residues = string(residues)
	}
	return q
}
