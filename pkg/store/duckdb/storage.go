package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const DailyRecordsSchema = `
	CREATE TABLE IF NOT EXISTS daily_records (
		run_id VARCHAR NOT NULL,
		day DATE NOT NULL,
		prior_day DATE NOT NULL,
		customers BIGINT NOT NULL,
		revenue BIGINT NOT NULL,
		PRIMARY KEY (run_id, day)
	);
`

var bootQueries = []string{
	DailyRecordsSchema,
}

type Settings struct {
	DbPath  string
	Threads int
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
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
