package ncbi

import (
	"net/http"
	"time"
)

const (
	// DefaultEndpoint is the public NCBI BLAST URL API.
	DefaultEndpoint = "https://blast.ncbi.nlm.nih.gov/Blast.cgi"

	// DefaultTool identifies this client to NCBI.
	DefaultTool = "blast-util"

	// DefaultRequestInterval is the minimum spacing between any two requests.
	DefaultRequestInterval = 10 * time.Second

	// DefaultPollInterval is the spacing between status checks for one RID.
	DefaultPollInterval = 60 * time.Second

	// DefaultMaxInitialWait caps how long the RTOE estimate is honoured
	// before the first status check.
	DefaultMaxInitialWait = 60 * time.Second

	// DefaultHTTPTimeout bounds each individual HTTP exchange.
	DefaultHTTPTimeout = 2 * time.Minute
)

// Options configures a Client.
type Options struct {
	// Endpoint is the Blast.cgi URL.
	Endpoint string

	// Program is used when SearchParameters.Program is empty.
	Program string

	// Tool and Email are sent with every submission so NCBI can
	// contact the operator instead of blocking the client.
	Tool  string
	Email string

	// UserAgent is sent as the User-Agent header.
	UserAgent string

	// RequestInterval is the minimum spacing between requests.
	// Zero disables pacing.
	RequestInterval time.Duration

	// PollInterval is the spacing between status checks.
	PollInterval time.Duration

	// MaxInitialWait caps the wait derived from RTOE.
	MaxInitialWait time.Duration

	// HTTPTimeout bounds each HTTP exchange. Ignored when HTTPClient is set.
	HTTPTimeout time.Duration

	// HTTPClient overrides the HTTP client, mainly for tests.
	HTTPClient *http.Client
}

// DefaultOptions returns options that follow NCBI's usage guidelines.
func DefaultOptions() Options {
	return Options{
		Endpoint:        DefaultEndpoint,
		Program:         "blastn",
		Tool:            DefaultTool,
		UserAgent:       DefaultTool,
		RequestInterval: DefaultRequestInterval,
		PollInterval:    DefaultPollInterval,
		MaxInitialWait:  DefaultMaxInitialWait,
		HTTPTimeout:     DefaultHTTPTimeout,
	}
}

// withDefaults fills empty fields from DefaultOptions.
// Zero intervals are kept: they are meaningful.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Endpoint == "" {
		o.Endpoint = d.Endpoint
	}
	if o.Program == "" {
		o.Program = d.Program
	}
	if o.Tool == "" {
		o.Tool = d.Tool
	}
	if o.UserAgent == "" {
		o.UserAgent = d.UserAgent
	}
	if o.HTTPTimeout <= 0 {
		o.HTTPTimeout = d.HTTPTimeout
	}
	return o
}
