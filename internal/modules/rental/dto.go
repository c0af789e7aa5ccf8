package rental

// AvailabilityQuery is bound from GET /car-rentals/availability query params.
type AvailabilityQuery struct {
	VehicleType string `form:"vehicle_type" json:"vehicle_type" validate:"required"`
	PickupDate  string `form:"pickup_date" json:"pickup_date" validate:"required"`
	ReturnDate  string `form:"return_date" json:"return_date" validate:"required"`
}

// SubmitRequest mirrors the rental inquiry form. Contact fields are optional.
type SubmitRequest struct {
	CustomerName  string   `json:"customer_name" validate:"max=200"`
	CustomerEmail string   `json:"customer_email" validate:"omitempty,shallow_email,max=254"`
	CustomerPhone string   `json:"customer_phone" validate:"omitempty,loose_phone"`
	PickupDate    string   `json:"pickup_date" validate:"required"`
	ReturnDate    string   `json:"return_date" validate:"required"`
	VehicleType   string   `json:"vehicle_type" validate:"required"`
	AddOns        []string `json:"add_ons" validate:"max=10"`
}

type RequestRef struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SubmitResponse struct {
	Request RequestRef `json:"request"`
}
