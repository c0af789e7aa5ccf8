package domain

import (
	"time"

	"github.com/google/uuid"
)

// CarRentalRequest is a guest's request to rent a vehicle for a date range.
// Contact fields are optional: the quick inquiry form only asks for dates.
type CarRentalRequest struct {
	ID            uuid.UUID `json:"id"`
	CustomerName  string    `json:"customer_name,omitempty"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	PickupDate    Date      `json:"pickup_date"`
	ReturnDate    Date      `json:"return_date"`
	VehicleType   string    `json:"vehicle_type"`
	AddOns        []string  `json:"add_ons"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func (r *CarRentalRequest) Range() DateRange {
	return DateRange{Start: r.PickupDate, End: r.ReturnDate}
}

// Availability is the outcome of a vehicle availability check.
type Availability struct {
	VehicleType string `json:"vehicle_type"`
	PickupDate  Date   `json:"pickup_date"`
	ReturnDate  Date   `json:"return_date"`
	Available   bool   `json:"available"`
	Conflicts   int    `json:"conflicts"`
}
