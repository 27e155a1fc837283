package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/blast-util/internal/core/domain"
	"github.com/custodia-labs/blast-util/internal/core/ports/driven"
	"github.com/custodia-labs/blast-util/internal/core/ports/driving"
	"github.com/custodia-labs/blast-util/internal/logger"
)

// Ensure BlastService implements the interface.
var _ driving.BlastService = (*BlastService)(nil)

// BlastService runs queries from a FASTA file through the remote search
// service and appends the summarised hits to a per-input store.
// Queries are processed strictly one at a time.
type BlastService struct {
	opener   driven.SequenceOpener
	client   driven.SearchClient
	store    driven.ResultStore
	reporter driven.Reporter
	newRunID func() string
}

// NewBlastService creates a new pipeline service.
// The reporter is optional (can be nil).
func NewBlastService(
	opener driven.SequenceOpener,
	client driven.SearchClient,
	store driven.ResultStore,
	reporter driven.Reporter,
) *BlastService {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &BlastService{
		opener:   opener,
		client:   client,
		store:    store,
		reporter: reporter,
		newRunID: func() string { return uuid.New().String() },
	}
}

// Run executes the pipeline described by cfg.
//
// Every query's rows are committed before the next query is read, so an
// error or interruption leaves the rows of earlier queries in place. The
// report reflects what was committed.
func (s *BlastService) Run(ctx context.Context, cfg domain.RunConfig) (*domain.RunReport, error) {
	logger.Section("BLAST Run")

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	report := &domain.RunReport{
		RunID:     s.newRunID(),
		StorePath: cfg.StorePath(),
	}
	logger.Debug("Run %s: input=%s store=%s", report.RunID, cfg.InputFile, report.StorePath)
	logger.Debug("Parameters: program=%s database=%s limit=%d matrix=%q e-value=%g",
		cfg.Params.Program, cfg.Params.Database, cfg.Params.Limit, cfg.Params.Matrix, cfg.Params.EValue)

	reader, err := s.opener.Open(cfg.InputFile)
	if err != nil {
		return report, err
	}
	defer reader.Close()

	if err := s.store.Prepare(report.StorePath); err != nil {
		return report, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return report, aborted(err)
		}

		query, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return report, err
		}

		if err := s.runQuery(ctx, cfg, report, query); err != nil {
			return report, err
		}
	}

	logger.Info("Run %s complete: %d queries, %d rows, %d skipped hits",
		report.RunID, report.Queries, report.Rows, report.SkippedHits)
	s.reporter.Done()
	return report, nil
}

// runQuery performs the search, extraction and persistence of one record.
func (s *BlastService) runQuery(
	ctx context.Context, cfg domain.RunConfig, report *domain.RunReport, query domain.QuerySequence,
) error {
	s.reporter.Searching(query.ID)

	if query.IsEmpty() {
		return fmt.Errorf("%w: %s: %w", domain.ErrExtraction, query.ID, errEmptyQuery)
	}

	start := time.Now()
	raw, err := s.client.Search(ctx, query, cfg.Params)
	logger.Since("Search for "+query.ID, start)
	if err != nil {
		if ctx.Err() != nil {
			return aborted(ctx.Err())
		}
		return fmt.Errorf("searching %s: %w", query.ID, err)
	}
	summary, err := Summarize(raw, query)
	if err != nil {
		return err
	}
	logger.Debug("%s: %d hits from %s (RID %s)", query.ID, len(raw.Hits), raw.Database, raw.RequestID)
	if raw.Message != "" {
		logger.Debug("%s: service message: %s", query.ID, raw.Message)
	}
	if raw.QueryLength > 0 && raw.QueryLength != query.Len() {
		logger.Warn("%s: service searched %d residues, query has %d", query.ID, raw.QueryLength, query.Len())
	}

	s.reporter.Writing(report.StorePath)
	if err := s.store.Append(ctx, report.StorePath, report.RunID, summary); err != nil {
		if ctx.Err() != nil {
			return aborted(ctx.Err())
		}
		return fmt.Errorf("writing results for %s: %w", query.ID, err)
	}

	report.Queries++
	report.Rows += len(summary.Rows)
	report.SkippedHits += summary.SkippedHits
	return nil
}

func validateConfig(cfg domain.RunConfig) error {
	if strings.TrimSpace(cfg.InputFile) == "" {
		return fmt.Errorf("%w: an input file is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(cfg.OutputFolder) == "" {
		return fmt.Errorf("%w: an output folder is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(cfg.Params.Database) == "" {
		return fmt.Errorf("%w: database name is empty", domain.ErrInvalidInput)
	}
	if cfg.Params.Limit < 1 {
		return fmt.Errorf("%w: limit must be at least 1, got %d", domain.ErrInvalidInput, cfg.Params.Limit)
	}
	return nil
}

func aborted(cause error) error {
	return fmt.Errorf("%w: %w", domain.ErrAborted, cause)
}

// errEmptyQuery is returned before submission for records without residues.
var errEmptyQuery = errors.New("sequence has no residues")

// nopReporter discards progress notifications.
type nopReporter struct{}

func (nopReporter) Searching(string) {}
func (nopReporter) Writing(string)   {}
func (nopReporter) Done()            {}
