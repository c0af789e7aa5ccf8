package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"onpauling/internal/domain"
)

// ErrDuplicateEmail is returned by Create when the address is already subscribed.
var ErrDuplicateEmail = errors.New("email already subscribed")

type NewsletterRepository struct {
	db *sqlx.DB
}

func NewNewsletterRepository(db *sqlx.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// subscriberModel only exists so SQLite development databases get the table.
type subscriberModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Email     string    `gorm:"column:email;not null;uniqueIndex"`
	Source    string    `gorm:"column:source;not null;default:website"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (subscriberModel) TableName() string { return "newsletter_subscribers" }

// Create inserts a subscriber
func (r *NewsletterRepository) Create(ctx context.Context, s *domain.NewsletterSubscriber) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))

	query := r.db.Rebind(`
		INSERT INTO newsletter_subscribers (id, email, source, created_at)
		VALUES (?, ?, ?, ?)
	`)
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Email, s.Source, s.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert subscriber: %w", err)
	}
	return nil
}

// GetByEmail returns nil, nil when nobody subscribed with email.
func (r *NewsletterRepository) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	var s domain.NewsletterSubscriber
	query := r.db.Rebind(`SELECT id, email, source, created_at FROM newsletter_subscribers WHERE email = ?`)
	err := r.db.GetContext(ctx, &s, query, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get subscriber: %w", err)
	}
	return &s, nil
}

func (r *NewsletterRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM newsletter_subscribers`); err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return total, nil
}
