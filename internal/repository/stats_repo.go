package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const (
	TableStayBookings = "stay_bookings"
	TableCarRentals   = "car_rental_requests"
)

// StatsRepository runs the aggregate queries behind the dashboard summary cards.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

type statusCount struct {
	Status sql.NullString `db:"status"`
	N      int            `db:"n"`
}

// CountByStatus returns raw status value -> row count for one booking table.
func (r *StatsRepository) CountByStatus(ctx context.Context, table string) (map[string]int, error) {
	if table != TableStayBookings && table != TableCarRentals {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	var rows []statusCount
	query := `SELECT status, COUNT(*) AS n FROM ` + table + ` GROUP BY status`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("count %s by status: %w", table, err)
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Status.String] += row.N
	}
	return out, nil
}
