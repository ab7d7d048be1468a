// Package postgres implements the analysis repository on PostgreSQL using pgx.
//
// Analyses and their column statistics live in two tables with one-directional
// ownership: column_statistics rows carry the parent analysis id and an
// ordinal position, and are written and deleted together with the parent in a
// single transaction.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/csvinsight/csvinsight/internal/analysis"
	"github.com/csvinsight/csvinsight/internal/engine"
)

// Repository is a PostgreSQL-backed analysis.Repository.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a Repository on the given connection pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Save inserts the analysis and its column statistics in one transaction and
// returns the record with its database-assigned id.
func (r *Repository) Save(ctx context.Context, a analysis.Analysis) (analysis.Analysis, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return analysis.Analysis{}, fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback(ctx)

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO analyses (
			id, name, raw_data, number_of_rows, number_of_columns,
			total_characters, csv_token_count, markdown_token_count, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, nullableName(a.Name), a.RawData, a.NumberOfRows, a.NumberOfColumns,
		a.TotalCharacters, a.CSVTokenCount, a.MarkdownTokenCount, a.CreatedAt,
	)
	if err != nil {
		return analysis.Analysis{}, fmt.Errorf("insert analysis: %w", err)
	}

	for i, cs := range a.ColumnStatistics {
		_, err = tx.Exec(ctx, `
			INSERT INTO column_statistics (
				analysis_id, ordinal, column_name, null_count, unique_count,
				inferred_type, mean, median, standard_deviation
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			a.ID, i, cs.ColumnName, cs.NullCount, cs.UniqueCount,
			string(cs.InferredType), cs.Mean, cs.Median, cs.StandardDeviation,
		)
		if err != nil {
			return analysis.Analysis{}, fmt.Errorf("insert column statistics %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return analysis.Analysis{}, fmt.Errorf("commit save: %w", err)
	}
	return a, nil
}

// FindByID returns the analysis with the given id, or analysis.ErrNotFound.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (analysis.Analysis, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, COALESCE(name, ''), raw_data, number_of_rows, number_of_columns,
		       total_characters, csv_token_count, markdown_token_count, created_at
		FROM analyses WHERE id = $1`, id)

	a, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return analysis.Analysis{}, analysis.ErrNotFound
		}
		return analysis.Analysis{}, fmt.Errorf("query analysis: %w", err)
	}

	stats, err := r.columnStatistics(ctx, id)
	if err != nil {
		return analysis.Analysis{}, err
	}
	a.ColumnStatistics = stats
	return a, nil
}

// FindAll returns all analyses with their column statistics, oldest first.
func (r *Repository) FindAll(ctx context.Context) ([]analysis.Analysis, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, COALESCE(name, ''), raw_data, number_of_rows, number_of_columns,
		       total_characters, csv_token_count, markdown_token_count, created_at
		FROM analyses ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	var out []analysis.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analyses: %w", err)
	}

	for i := range out {
		stats, err := r.columnStatistics(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].ColumnStatistics = stats
	}
	return out, nil
}

// Delete removes an analysis; column statistics go with it via ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete analysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return analysis.ErrNotFound
	}
	return nil
}

func (r *Repository) columnStatistics(ctx context.Context, id uuid.UUID) ([]engine.ColumnStatistics, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT column_name, null_count, unique_count, inferred_type,
		       mean, median, standard_deviation
		FROM column_statistics WHERE analysis_id = $1 ORDER BY ordinal`, id)
	if err != nil {
		return nil, fmt.Errorf("query column statistics: %w", err)
	}
	defer rows.Close()

	var stats []engine.ColumnStatistics
	for rows.Next() {
		var cs engine.ColumnStatistics
		var inferredType string
		if err := rows.Scan(&cs.ColumnName, &cs.NullCount, &cs.UniqueCount,
			&inferredType, &cs.Mean, &cs.Median, &cs.StandardDeviation); err != nil {
			return nil, fmt.Errorf("scan column statistics: %w", err)
		}
		cs.InferredType = engine.ColumnType(inferredType)
		stats = append(stats, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate column statistics: %w", err)
	}
	return stats, nil
}

func scanAnalysis(row pgx.Row) (analysis.Analysis, error) {
	var a analysis.Analysis
	err := row.Scan(&a.ID, &a.Name, &a.RawData, &a.NumberOfRows, &a.NumberOfColumns,
		&a.TotalCharacters, &a.CSVTokenCount, &a.MarkdownTokenCount, &a.CreatedAt)
	return a, err
}

// nullableName stores empty names as NULL so the download filename fallback
// can distinguish "unnamed" from a name that happens to be empty.
func nullableName(name string) *string {
	if name == "" {
		return nil
	}
	return &name
}
