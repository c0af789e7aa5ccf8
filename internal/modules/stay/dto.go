package stay

// SubmitRequest mirrors the stay booking form. Dates stay strings here so a
// malformed value becomes a field error instead of a bind failure.
type SubmitRequest struct {
	Name            string `json:"name" validate:"notblank,max=200"`
	Email           string `json:"email" validate:"required,shallow_email,max=254"`
	Phone           string `json:"phone" validate:"required,loose_phone"`
	CountryCode     string `json:"country_code" validate:"omitempty,dial_code"`
	CheckIn         string `json:"check_in" validate:"required"`
	CheckOut        string `json:"check_out" validate:"required"`
	RoomType        string `json:"room_type" validate:"required,oneof=presidential executive deluxe"`
	Guests          int    `json:"guests" validate:"min=1,max=6"`
	SpecialRequests string `json:"special_requests" validate:"max=2000"`
}

type BookingRef struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SubmitResponse struct {
	Booking BookingRef `json:"booking"`
}
