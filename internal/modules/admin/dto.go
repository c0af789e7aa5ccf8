package admin

import (
	"time"

	"onpauling/internal/domain"
)

type Kind string

const (
	KindStay Kind = "stay"
	KindCar  Kind = "car"
)

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type StayBookingView struct {
	domain.StayBooking
	PhoneE164 string `json:"phone_e164,omitempty"`
	Nights    int    `json:"nights"`
}

type CarRentalView struct {
	domain.CarRentalRequest
	CustomerPhoneE164 string `json:"customer_phone_e164,omitempty"`
}

type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// TableStats backs one dashboard summary card. Statuses outside the
// lifecycle count toward Total only.
type TableStats struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Total     int `json:"total"`
}

type StatsResponse struct {
	StayBookings TableStats `json:"stay_bookings"`
	CarRentals   TableStats `json:"car_rentals"`
	Subscribers  int        `json:"newsletter_subscribers"`
}

type ConfirmResult struct {
	Kind    Kind          `json:"kind"`
	ID      string        `json:"id"`
	Status  domain.Status `json:"status"`
	Changed bool          `json:"changed"`
}
