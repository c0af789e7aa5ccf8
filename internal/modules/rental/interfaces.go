package rental

import (
	"context"

	"onpauling/internal/domain"
)

type RentalRepository interface {
	Create(ctx context.Context, r *domain.CarRentalRequest) error
	FindOverlapping(ctx context.Context, vehicleType string, pickup, ret domain.Date) ([]domain.CarRentalRequest, error)
}

// Fleet answers menu membership questions; implemented by catalog.Service.
type Fleet interface {
	IsVehicleType(t string) bool
	IsAddOn(name string) bool
}
