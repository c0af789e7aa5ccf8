package catalog

import "onpauling/internal/domain"

type Suite struct {
	Type          domain.RoomType `json:"type"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	PricePerNight int             `json:"price_per_night"`
	Currency      string          `json:"currency"`
}

// Vehicle is one fleet menu entry. Type is the exact label stored in
// car_rental_requests.vehicle_type and used by the availability check.
type Vehicle struct {
	Type        string `json:"type"`
	Model       string `json:"model"`
	Category    string `json:"category"`
	PricePerDay int    `json:"price_per_day"`
	Currency    string `json:"currency"`
	Seats       int    `json:"seats"`
}

type AddOn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CountryCode struct {
	DialCode string `json:"dial_code"`
	Country  string `json:"country"`
	Default  bool   `json:"default,omitempty"`
}
