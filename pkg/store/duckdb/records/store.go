package records

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/store"
	"github.com/de-tools/dummy-atlas/pkg/store/duckdb"
)

// Store keeps the day projections of one build, keyed by run id.
type Store interface {
	Add(ctx context.Context, runID string, records []store.DayRecord) error
	JoinPriorYear(ctx context.Context, runID string, from, to time.Time) ([]store.PriorYearMatch, error)
}

type recordsStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &recordsStore{db: db}, nil
}

func (s *recordsStore) Add(ctx context.Context, runID string, records []store.DayRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO daily_records (run_id, day, prior_day, customers, revenue)
		VALUES (?, ?, ?, ?, ?)`

	stmt, err := duckdb.Conn(ctx, s.db).PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		_, err = stmt.ExecContext(ctx,
			runID,
			record.Day,
			record.PriorDay,
			record.Customers,
			record.Revenue,
		)
		if err != nil {
			return fmt.Errorf("insert record %s: %w", record.Day.Format(time.DateOnly), err)
		}
	}

	return nil
}

// JoinPriorYear left-joins the days in [from, to] against every day stored for the run.
func (s *recordsStore) JoinPriorYear(
	ctx context.Context,
	runID string,
	from, to time.Time,
) ([]store.PriorYearMatch, error) {
	query := `
		SELECT w.day, p.customers, p.revenue
		FROM daily_records w
		LEFT JOIN daily_records p
			ON p.run_id = w.run_id AND p.day = w.prior_day
		WHERE w.run_id = ? AND w.day >= ? AND w.day <= ?
		ORDER BY w.day
	`
	rows, err := duckdb.Conn(ctx, s.db).QueryContext(ctx, query, runID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query prior year: %w", err)
	}
	defer rows.Close()

	matches := make([]store.PriorYearMatch, 0)
	for rows.Next() {
		var m store.PriorYearMatch
		if err := rows.Scan(&m.Day, &m.PriorCustomers, &m.PriorRevenue); err != nil {
			return nil, fmt.Errorf("scan prior year: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
