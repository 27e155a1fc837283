package domain

import (
	"context"
	"errors"
)

// Domain errors represent pipeline failures.
// Adapters wrap them with %w so callers can classify with errors.Is.
var (
	// ErrInvalidInput indicates malformed or missing configuration.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInputNotFound indicates the input sequence file does not exist.
	ErrInputNotFound = errors.New("could not find file")

	// ErrMalformedInput indicates the input file could not be parsed.
	ErrMalformedInput = errors.New("malformed sequence file")

	// ErrOutputUnavailable indicates the output folder or store could not be written.
	ErrOutputUnavailable = errors.New("output unavailable")

	// ErrRemote indicates a transport, protocol or service-side failure of the search.
	ErrRemote = errors.New("remote search failed")

	// ErrExtraction indicates a search result could not be summarised.
	ErrExtraction = errors.New("result extraction failed")

	// ErrAborted indicates the run was interrupted by the user.
	// It is not a failure.
	ErrAborted = errors.New("search aborted")
)

// ErrorKind classifies an error into the pipeline's failure taxonomy.
type ErrorKind string

const (
	// KindNone is returned for a nil error.
	KindNone ErrorKind = ""
	// KindConfig covers missing or invalid configuration.
	KindConfig ErrorKind = "configuration"
	// KindIO covers unreadable input and unwritable output.
	KindIO ErrorKind = "io"
	// KindRemote covers transport, response and service errors.
	KindRemote ErrorKind = "remote"
	// KindExtraction covers results that cannot be summarised.
	KindExtraction ErrorKind = "extraction"
	// KindInterrupted covers user interruption.
	KindInterrupted ErrorKind = "interrupted"
	// KindUnknown covers anything else.
	KindUnknown ErrorKind = "unknown"
)

// Classify maps an error to its ErrorKind.
// Interruption wins over every other classification so that a cancelled
// request is never reported as a remote failure.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrAborted), errors.Is(err, context.Canceled):
		return KindInterrupted
	case errors.Is(err, ErrInvalidInput):
		return KindConfig
	case errors.Is(err, ErrInputNotFound),
		errors.Is(err, ErrMalformedInput),
		errors.Is(err, ErrOutputUnavailable):
		return KindIO
	case errors.Is(err, ErrRemote):
		return KindRemote
	case errors.Is(err, ErrExtraction):
		return KindExtraction
	default:
		return KindUnknown
	}
}

// IsAborted reports whether err represents a user interruption.
func IsAborted(err error) bool {
	return Classify(err) == KindInterrupted
}
