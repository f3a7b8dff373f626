package analysis

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bharathk2498/migrationgpt/pkg/models/store"
	"github.com/bharathk2498/migrationgpt/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: s}
}

func record(id string, createdAt time.Time, status string, durationMs int64) store.AnalysisRecord {
	return store.AnalysisRecord{
		ID:            id,
		ProjectName:   "project-" + id,
		TargetCloud:   "aws",
		Status:        status,
		SourceFormat:  "terraform",
		RiskScore:     70,
		FindingsCount: 3,
		EstimatedCost: 63000,
		TimelineWeeks: 20,
		DurationMs:    durationMs,
		CreatedAt:     createdAt,
		Payload:       `{"analysis_id":"` + id + `"}`,
	}
}

func TestAnalysisStore_SaveAndGet(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("success - round trip", func(t *testing.T) {
		expected := record("a1", created, "completed", 120)
		require.NoError(t, f.store.Save(ctx, expected))

		got, err := f.store.Get(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, expected.ProjectName, got.ProjectName)
		assert.Equal(t, expected.RiskScore, got.RiskScore)
		assert.Equal(t, expected.EstimatedCost, got.EstimatedCost)
		assert.Equal(t, expected.Payload, got.Payload)
		assert.True(t, expected.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("success - save replaces", func(t *testing.T) {
		updated := record("a1", created, "completed", 120)
		updated.RiskScore = 90
		require.NoError(t, f.store.Save(ctx, updated))

		got, err := f.store.Get(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, 90, got.RiskScore)
	})

	t.Run("error - not found", func(t *testing.T) {
		_, err := f.store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("success - inside transaction", func(t *testing.T) {
		tx, err := f.db.BeginTx(ctx, nil)
		require.NoError(t, err)

		require.NoError(t, f.store.Save(duckdb.WithTransaction(ctx, tx), record("tx1", created, "completed", 1)))
		require.NoError(t, tx.Rollback())

		_, err = f.store.Get(ctx, "tx1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAnalysisStore_ListAndStats(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	stats, err := f.store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.AnalysisStats{}, *stats)

	require.NoError(t, f.store.Save(ctx, record("old", base, "completed", 100)))
	require.NoError(t, f.store.Save(ctx, record("new", base.Add(time.Hour), "completed", 300)))
	require.NoError(t, f.store.Save(ctx, record("bad", base.Add(30*time.Minute), "failed", 200)))

	records, err := f.store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "new", records[0].ID)
	assert.Equal(t, "bad", records[1].ID)

	stats, err = f.store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalAnalyses)
	assert.Equal(t, int64(2), stats.CompletedAnalyses)
	assert.InDelta(t, 200.0, stats.AvgDurationMs, 0.001)
}

func TestAnalysisStore_Mocked(t *testing.T) {
	ctx := context.Background()

	t.Run("stats query", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`COUNT(CASE WHEN status = ? THEN 1 END) AS completed_analyses`)).
			WithArgs("completed").
			WillReturnRows(sqlmock.NewRows([]string{"total_analyses", "completed_analyses", "avg_duration_ms"}).
				AddRow(int64(4), int64(3), 250.5))

		s, err := NewStore(db)
		require.NoError(t, err)

		stats, err := s.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, &store.AnalysisStats{TotalAnalyses: 4, CompletedAnalyses: 3, AvgDurationMs: 250.5}, stats)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure is wrapped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT OR REPLACE INTO analyses`)).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		s, err := NewStore(db)
		require.NoError(t, err)

		err = s.Save(ctx, record("x", time.Now(), "completed", 1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insert analysis: disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure is not reported as not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM analyses WHERE id = ?`)).
			WithArgs("a1").
			WillReturnError(errors.New("connection reset"))

		s, err := NewStore(db)
		require.NoError(t, err)

		_, err = s.Get(ctx, "a1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}
