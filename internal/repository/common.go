package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"onpauling/internal/domain"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// ListFilter drives the admin dashboard tables: newest first, optional status.
// A status filter also matches the legacy values the dashboard folds into it.
type ListFilter struct {
	Status *domain.Status
	Limit  int
	Offset int
}

func (f ListFilter) normalized() ListFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

func (f ListFilter) apply(q *gorm.DB) *gorm.DB {
	f = f.normalized()
	if f.Status != nil {
		q = q.Where("status IN ?", f.Status.StoredValues())
	}
	return q.Order("created_at desc").Limit(f.Limit).Offset(f.Offset)
}

// Models lists every table the application owns, for AutoMigrate on SQLite.
func Models() []any {
	return []any{
		&stayBookingModel{},
		&carRentalModel{},
		&subscriberModel{},
	}
}

// activeStatuses are the raw column values that hold a vehicle. Legacy
// values are not folded in here.
func activeStatuses() []string {
	out := make([]string, 0, len(domain.ActiveStatuses))
	for _, s := range domain.ActiveStatuses {
		out = append(out, string(s))
	}
	return out
}

func updateStatus(ctx context.Context, db *gorm.DB, model any, id uuid.UUID, status domain.Status) error {
	tx := db.WithContext(ctx).Model(model).Where("id = ?", id).Update("status", string(status))
	if tx.Error != nil {
		return fmt.Errorf("update status: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IsUniqueViolation recognises duplicate-key errors from PostgreSQL and SQLite.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint")
}
