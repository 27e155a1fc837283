package ncbi

import (
	"errors"
	"fmt"
)

// NCBI-specific errors.
var (
	// ErrNoRequestID indicates the Put response carried no RID.
	ErrNoRequestID = errors.New("ncbi: no request ID in submission response")

	// ErrMalformedReport indicates the XML report could not be decoded.
	ErrMalformedReport = errors.New("ncbi: malformed report")
)

// APIError represents a non-success HTTP response or a service-side error page.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("ncbi: service error: %s", e.Message)
	}
	return fmt.Sprintf("ncbi: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// SearchStatusError reports a search that ended in a non-READY state.
type SearchStatusError struct {
	RID    string
	Status string
}

func (e *SearchStatusError) Error() string {
	switch e.Status {
	case StatusUnknown:
		return fmt.Sprintf("ncbi: search %s expired or is unknown to the service", e.RID)
	case StatusFailed:
		return fmt.Sprintf("ncbi: search %s failed on the service", e.RID)
	default:
		return fmt.Sprintf("ncbi: search %s returned unexpected status %q", e.RID, e.Status)
	}
}

// IsSearchFailed checks if the error is a failed or expired search.
func IsSearchFailed(err error) bool {
	var statusErr *SearchStatusError
	return errors.As(err, &statusErr)
}

// IsServerError checks if the error is a 5xx response.
func IsServerError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return false
}
