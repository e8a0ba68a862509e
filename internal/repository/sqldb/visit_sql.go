package sqldb

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository"
)

var _ repository.VisitRepository = (*SQLVisitRepository)(nil)

const visitsCounter = "visits"

// SQLVisitRepository keeps the visit counter as a row of the counters table.
type SQLVisitRepository struct {
	db *sqlx.DB
	sq sq.StatementBuilderType
}

func NewSQLVisitRepository(db *sqlx.DB, driver string) *SQLVisitRepository {
	return &SQLVisitRepository{
		db: db,
		sq: statementBuilder(driver),
	}
}

func (r *SQLVisitRepository) IncrementVisits(ctx context.Context) (int64, error) {
	qry, args, err := r.sq.Insert("counters").
		Columns("name", "value").
		Values(visitsCounter, 1).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = counters.value + 1 RETURNING value").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build upsert: %w", err)
	}

	var visits int64
	if err := r.db.QueryRowxContext(ctx, qry, args...).Scan(&visits); err != nil {
		return 0, fmt.Errorf("failed to increment visits: %w", err)
	}
	return visits, nil
}
