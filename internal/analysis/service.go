package analysis

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/csvinsight/csvinsight/internal/engine"
	"github.com/csvinsight/csvinsight/internal/token"
)

// Service orchestrates analysis requests: parse, per-column statistics,
// Markdown rendering, token estimation, assembly, and persistence.
type Service struct {
	repo    Repository
	tokens  token.Estimator
	limiter *IngestLimiter
}

// NewService creates a Service. The limiter may be nil to disable ingest
// concurrency limiting (tests do this).
func NewService(repo Repository, tokens token.Estimator, limiter *IngestLimiter) *Service {
	return &Service{repo: repo, tokens: tokens, limiter: limiter}
}

// Limiter returns the ingest limiter, or nil when limiting is disabled.
func (s *Service) Limiter() *IngestLimiter { return s.limiter }

// Ingest analyzes raw CSV text and persists the result.
//
// Any parse error aborts the request before statistics or rendering work
// begins; nothing is persisted on failure. The returned record carries the
// repository-assigned id.
func (s *Service) Ingest(ctx context.Context, name, raw string) (Analysis, error) {
	if s.limiter != nil {
		if err := s.limiter.Acquire(ctx); err != nil {
			return Analysis{}, err
		}
		defer s.limiter.Release()
	}

	table, err := engine.Parse(raw)
	if err != nil {
		return Analysis{}, err
	}

	columns := make([]engine.ColumnStatistics, table.NumberOfColumns())
	for i, header := range table.Headers {
		columns[i] = engine.AnalyzeColumn(header, table.Column(i))
	}

	markdown := engine.RenderMarkdown(table.Headers, table.Rows)

	a := Analysis{
		Name:               name,
		NumberOfRows:       table.NumberOfRows(),
		NumberOfColumns:    table.NumberOfColumns(),
		TotalCharacters:    int64(utf8.RuneCountInString(raw)),
		CSVTokenCount:      s.tokens.Count(raw),
		MarkdownTokenCount: s.tokens.Count(markdown),
		ColumnStatistics:   columns,
		CreatedAt:          time.Now().UTC(),
		RawData:            raw,
	}

	saved, err := s.repo.Save(ctx, a)
	if err != nil {
		return Analysis{}, fmt.Errorf("save analysis: %w", err)
	}
	return saved, nil
}

// Get returns a previously ingested analysis by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Analysis, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all analyses in creation order.
func (s *Service) List(ctx context.Context) ([]Analysis, error) {
	return s.repo.FindAll(ctx)
}

// Delete removes an analysis and its column statistics.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Markdown re-renders the stored CSV of an analysis as a Markdown table.
// The rendering is a deterministic function of the parsed table, so the
// output is byte-identical to the rendering produced at ingest time.
func (s *Service) Markdown(ctx context.Context, id uuid.UUID) (Analysis, string, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Analysis{}, "", err
	}

	table, err := engine.Parse(a.RawData)
	if err != nil {
		// The stored text was validated at ingest time; failing here means
		// the stored record is corrupt.
		return Analysis{}, "", fmt.Errorf("stored CSV for analysis %s no longer parses: %w", id, err)
	}

	return a, engine.RenderMarkdown(table.Headers, table.Rows), nil
}
