package ncbi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/blast-util/internal/core/domain"
	"github.com/custodia-labs/blast-util/internal/core/ports/driven"
	"github.com/custodia-labs/blast-util/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchClient = (*Client)(nil)

// Search status values reported by FORMAT_OBJECT=SearchInfo.
const (
	StatusWaiting = "WAITING"
	StatusReady   = "READY"
	StatusFailed  = "FAILED"
	StatusUnknown = "UNKNOWN"
)

// maxErrorBody bounds how much of an error response is kept in an APIError.
const maxErrorBody = 512

var (
	ridPattern      = regexp.MustCompile(`RID = (\S+)`)
	rtoePattern     = regexp.MustCompile(`RTOE = (\d+)`)
	statusPattern   = regexp.MustCompile(`Status=(\w+)`)
	errorPattern    = regexp.MustCompile(`(?s)<p class="error">(.*?)</p>`)
	messagePattern  = regexp.MustCompile(`Message ID#\d+ Error: ([^<\n]+)`)
	tagStripPattern = regexp.MustCompile(`<[^>]+>`)
)

// Client talks to the NCBI BLAST URL API.
type Client struct {
	opts    Options
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a new NCBI client.
func NewClient(opts Options) *Client {
	opts = opts.withDefaults()

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.HTTPTimeout}
	}

	limit := rate.Inf
	if opts.RequestInterval > 0 {
		limit = rate.Every(opts.RequestInterval)
	}

	return &Client{
		opts:    opts,
		http:    httpClient,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Search submits query, waits for the service to finish and returns the parsed report.
func (c *Client) Search(
	ctx context.Context, query domain.QuerySequence, params domain.SearchParameters,
) (*domain.RawSearchResult, error) {
	logger.Section("NCBI Search: " + query.ID)

	rid, rtoe, err := c.submit(ctx, query, params)
	if err != nil {
		logFailure(query.ID, err)
		return nil, fmt.Errorf("%w: submitting %s: %w", domain.ErrRemote, query.ID, err)
	}
	logger.Debug("Submitted %s as RID %s (estimated %s)", query.ID, rid, rtoe)

	if err := c.waitReady(ctx, rid, rtoe); err != nil {
		logFailure(query.ID, err)
		return nil, fmt.Errorf("%w: waiting for %s (RID %s): %w", domain.ErrRemote, query.ID, rid, err)
	}

	result, err := c.fetch(ctx, rid, params)
	if err != nil {
		logFailure(query.ID, err)
		return nil, fmt.Errorf("%w: fetching %s (RID %s): %w", domain.ErrRemote, query.ID, rid, err)
	}
	return result, nil
}

// logFailure notes service-side failures.
func logFailure(queryID string, err error) {
	switch {
	case IsSearchFailed(err):
		logger.Warn("%s: search did not complete on the service: %v", queryID, err)
	case IsServerError(err):
		logger.Warn("%s: NCBI server error: %v", queryID, err)
	}
}

// submit sends CMD=Put and returns the RID and the estimated time to completion.
func (c *Client) submit(
	ctx context.Context, query domain.QuerySequence, params domain.SearchParameters,
) (string, time.Duration, error) {
	program := params.Program
	if program == "" {
		program = c.opts.Program
	}

	form := url.Values{}
	form.Set("CMD", "Put")
	form.Set("PROGRAM", program)
	form.Set("DATABASE", params.Database)
	form.Set("QUERY", query.Residues)
	form.Set("HITLIST_SIZE", strconv.Itoa(params.Limit))
	form.Set("EXPECT", strconv.FormatFloat(params.EValue, 'g', -1, 64))
	if params.Matrix != "" {
		form.Set("MATRIX_NAME", params.Matrix)
	}
	form.Set("TOOL", c.opts.Tool)
	if c.opts.Email != "" {
		form.Set("EMAIL", c.opts.Email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req)
	if err != nil {
		return "", 0, err
	}

	m := ridPattern.FindSubmatch(body)
	if m == nil {
		if msg := serviceMessage(body); msg != "" {
			return "", 0, &APIError{Message: msg}
		}
		return "", 0, ErrNoRequestID
	}
	rid := string(m[1])

	var rtoe time.Duration
	if m := rtoePattern.FindSubmatch(body); m != nil {
		if secs, err := strconv.Atoi(string(m[1])); err == nil {
			rtoe = time.Duration(secs) * time.Second
		}
	}
	return rid, rtoe, nil
}

// waitReady blocks until the search identified by rid is READY.
// Polling a pending search is part of the protocol, not a retry.
func (c *Client) waitReady(ctx context.Context, rid string, rtoe time.Duration) error {
	initial := rtoe
	if initial > c.opts.MaxInitialWait {
		initial = c.opts.MaxInitialWait
	}
	if err := sleep(ctx, initial); err != nil {
		return err
	}

	for polls := 1; ; polls++ {
		status, err := c.status(ctx, rid)
		if err != nil {
			return err
		}
		logger.Debug("RID %s poll %d: %s", rid, polls, status)

		switch status {
		case StatusReady:
			return nil
		case StatusWaiting:
			if err := sleep(ctx, c.opts.PollInterval); err != nil {
				return err
			}
		default:
			return &SearchStatusError{RID: rid, Status: status}
		}
	}
}

// status sends CMD=Get&FORMAT_OBJECT=SearchInfo and returns the Status value.
func (c *Client) status(ctx context.Context, rid string) (string, error) {
	q := url.Values{}
	q.Set("CMD", "Get")
	q.Set("FORMAT_OBJECT", "SearchInfo")
	q.Set("RID", rid)

	body, err := c.get(ctx, q)
	if err != nil {
		return "", err
	}

	m := statusPattern.FindSubmatch(body)
	if m == nil {
		return "", &APIError{Message: "no status in search info response"}
	}
	return string(m[1]), nil
}

// fetch sends CMD=Get&FORMAT_TYPE=XML and decodes the report.
func (c *Client) fetch(ctx context.Context, rid string, params domain.SearchParameters) (*domain.RawSearchResult, error) {
	q := url.Values{}
	q.Set("CMD", "Get")
	q.Set("RID", rid)
	q.Set("FORMAT_TYPE", "XML")
	q.Set("ALIGNMENTS", strconv.Itoa(params.Limit))
	q.Set("DESCRIPTIONS", strconv.Itoa(params.Limit))

	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}

	result, err := decodeReport(body)
	if err != nil {
		return nil, err
	}
	result.RequestID = rid
	return result, nil
}

func (c *Client) get(ctx context.Context, q url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.Endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// do paces, sends and reads a request. Non-2xx responses become APIErrors.
func (c *Client) do(req *http.Request) ([]byte, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := serviceMessage(body)
		if msg == "" {
			msg = truncate(strings.TrimSpace(string(body)), maxErrorBody)
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    msg,
			URL:        req.URL.Redacted(),
		}
	}
	return body, nil
}

// serviceMessage extracts a human-readable error from an NCBI HTML page.
func serviceMessage(body []byte) string {
	for _, p := range []*regexp.Regexp{errorPattern, messagePattern} {
		if m := p.FindSubmatch(body); m != nil {
			text := tagStripPattern.ReplaceAll(m[1], nil)
			return strings.Join(strings.Fields(string(text)), " ")
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
