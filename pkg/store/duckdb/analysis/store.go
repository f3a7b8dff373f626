package analysis

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bharathk2498/migrationgpt/pkg/models/store"
	"github.com/bharathk2498/migrationgpt/pkg/store/duckdb"
)

var ErrNotFound = errors.New("analysis not found")

type Store interface {
	Save(ctx context.Context, record store.AnalysisRecord) error
	Get(ctx context.Context, id string) (*store.AnalysisRecord, error)
	List(ctx context.Context, limit int) ([]store.AnalysisRecord, error)
	Stats(ctx context.Context) (*store.AnalysisStats, error)
}

type analysisStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &analysisStore{db: db}, nil
}

// Save inserts the record, replacing an earlier record with the same id. It
// joins the transaction carried by ctx when there is one.
func (s *analysisStore) Save(ctx context.Context, record store.AnalysisRecord) error {
	return duckdb.WithinTransaction(ctx, s.db, func(ctx context.Context) error {
		return insertRecord(ctx, duckdb.GetTransaction(ctx), record)
	})
}

func insertRecord(ctx context.Context, tx *sql.Tx, record store.AnalysisRecord) error {
	query := `
		INSERT OR REPLACE INTO analyses (
			id, project_name, target_cloud, status, source_format, risk_score,
			findings_count, estimated_cost, timeline_weeks, duration_ms, created_at, payload
		) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		)`

	_, err := tx.ExecContext(ctx, query,
		record.ID,
		record.ProjectName,
		record.TargetCloud,
		record.Status,
		record.SourceFormat,
		record.RiskScore,
		record.FindingsCount,
		record.EstimatedCost,
		record.TimelineWeeks,
		record.DurationMs,
		record.CreatedAt.UTC(),
		record.Payload,
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

const selectColumns = `
	id, project_name, target_cloud, status, source_format, risk_score,
	findings_count, estimated_cost, timeline_weeks, duration_ms, created_at, payload`

func (s *analysisStore) Get(ctx context.Context, id string) (*store.AnalysisRecord, error) {
	query := `SELECT ` + selectColumns + ` FROM analyses WHERE id = ?`

	record, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return record, nil
}

// List returns the most recent analyses first.
func (s *analysisStore) List(ctx context.Context, limit int) ([]store.AnalysisRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + selectColumns + ` FROM analyses ORDER BY created_at DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	records := make([]store.AnalysisRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	return records, nil
}

func (s *analysisStore) Stats(ctx context.Context) (*store.AnalysisStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_analyses,
			COUNT(CASE WHEN status = ? THEN 1 END) AS completed_analyses,
			COALESCE(AVG(duration_ms), 0) AS avg_duration_ms
		FROM analyses`

	var stats store.AnalysisStats
	err := s.db.QueryRowContext(ctx, query, "completed").
		Scan(&stats.TotalAnalyses, &stats.CompletedAnalyses, &stats.AvgDurationMs)
	if err != nil {
		return nil, fmt.Errorf("get analysis stats: %w", err)
	}
	return &stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*store.AnalysisRecord, error) {
	var (
		r             store.AnalysisRecord
		sourceFormat  sql.NullString
		riskScore     sql.NullInt64
		findingsCount sql.NullInt64
		estimatedCost sql.NullFloat64
		timelineWeeks sql.NullInt64
		durationMs    sql.NullInt64
	)
	err := row.Scan(
		&r.ID, &r.ProjectName, &r.TargetCloud, &r.Status, &sourceFormat, &riskScore,
		&findingsCount, &estimatedCost, &timelineWeeks, &durationMs, &r.CreatedAt, &r.Payload,
	)
	if err != nil {
		return nil, err
	}

	r.SourceFormat = sourceFormat.String
	r.RiskScore = int(riskScore.Int64)
	r.FindingsCount = int(findingsCount.Int64)
	r.EstimatedCost = estimatedCost.Float64
	r.TimelineWeeks = int(timelineWeeks.Int64)
	r.DurationMs = durationMs.Int64
	return &r, nil
}
