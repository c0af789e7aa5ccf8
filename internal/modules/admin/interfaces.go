package admin

import (
	"context"

	"github.com/google/uuid"

	"onpauling/internal/domain"
	"onpauling/internal/repository"
)

type StayBookingRepository interface {
	List(ctx context.Context, f repository.ListFilter) ([]domain.StayBooking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StayBooking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
}

type CarRentalRepository interface {
	List(ctx context.Context, f repository.ListFilter) ([]domain.CarRentalRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CarRentalRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
}

type StatsRepository interface {
	CountByStatus(ctx context.Context, table string) (map[string]int, error)
}

type SubscriberCounter interface {
	Count(ctx context.Context) (int, error)
}
