package records

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/adapters"
	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/de-tools/dummy-atlas/pkg/models/store"
	"github.com/de-tools/dummy-atlas/pkg/services/yoy"
	"github.com/de-tools/dummy-atlas/pkg/store/duckdb"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type sqlAugmenter struct {
	db    *sql.DB
	store Store
}

// NewAugmenter runs the prior-year join inside DuckDB.
func NewAugmenter(db *sql.DB) (yoy.Augmenter, error) {
	s, err := NewStore(db)
	if err != nil {
		return nil, err
	}
	return &sqlAugmenter{db: db, store: s}, nil
}

// Augment loads full into a scratch transaction, joins the working window and rolls back.
func (a *sqlAugmenter) Augment(
	ctx context.Context,
	full, working []domain.DailyRecord,
) ([]domain.YoYRecord, error) {
	if len(working) == 0 {
		return []domain.YoYRecord{}, nil
	}
	runID := uuid.NewString()
	logger := zerolog.Ctx(ctx).With().Str("run_id", runID).Logger()

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			logger.Warn().Err(err).Msg("failed to roll back scratch transaction")
		}
	}()
	txCtx := duckdb.WithTransaction(ctx, tx)

	rows := make([]store.DayRecord, 0, len(full))
	for _, r := range full {
		rows = append(rows, adapters.MapDomainRecordToStoreDayRecord(r))
	}
	if err := a.store.Add(txCtx, runID, rows); err != nil {
		return nil, err
	}

	matches, err := a.store.JoinPriorYear(txCtx, runID, working[0].Date, working[len(working)-1].Date)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]store.PriorYearMatch, len(matches))
	for _, m := range matches {
		byDay[m.Day.Format(time.DateOnly)] = m
	}

	out := make([]domain.YoYRecord, 0, len(working))
	for _, r := range working {
		out = append(out, adapters.MapStorePriorYearMatchToDomain(r, byDay[r.Date.Format(time.DateOnly)]))
	}
	logger.Debug().Int("rows", len(rows)).Int("matches", len(matches)).Msg("prior year join done")
	return out, nil
}
