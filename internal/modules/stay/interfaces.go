package stay

import (
	"context"

	"onpauling/internal/domain"
)

// BookingRepository is the single write the stay form performs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.StayBooking) error
}
