package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const AnalysesTableSchema = `
	CREATE TABLE IF NOT EXISTS analyses (
		id VARCHAR NOT NULL PRIMARY KEY,
		project_name VARCHAR NOT NULL,
		target_cloud VARCHAR NOT NULL,
		status VARCHAR NOT NULL,
		source_format VARCHAR,
		risk_score INTEGER,
		findings_count INTEGER,
		estimated_cost DOUBLE,
		timeline_weeks INTEGER,
		duration_ms BIGINT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		payload VARCHAR NOT NULL
	);
`

const AnalysesCreatedAtIndex = `
	CREATE INDEX IF NOT EXISTS analyses_created_at_idx ON analyses (created_at);
`

var bootQueries = []string{
	AnalysesTableSchema,
	AnalysesCreatedAtIndex,
}

type Settings struct {
	DbPath  string `mapstructure:"path"`
	Threads int    `mapstructure:"threads"`
}

func NewDB(settings Settings) (*sql.DB, error) {
	threads := settings.Threads
	if threads <= 0 {
		threads = 4
	}

	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=%d", settings.DbPath, threads), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return fmt.Errorf("boot query failed: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb at %q: %w", settings.DbPath, err)
	}

	return sql.OpenDB(c), nil
}
