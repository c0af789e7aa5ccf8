package realtime

import "time"

const (
	EventStayBookingCreated = "stay_booking.created"
	EventCarRentalCreated   = "car_rental.created"
	EventBookingConfirmed   = "booking.confirmed"
)

// Event is pushed to every open admin dashboard so it knows to re-fetch.
type Event struct {
	Type    string    `json:"type"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

func NewEvent(eventType string, payload any) Event {
	return Event{Type: eventType, Payload: payload, At: time.Now().UTC()}
}

// Publisher is what the submission and admin services depend on.
// A nil Publisher is allowed wherever one is accepted.
type Publisher interface {
	Publish(event Event)
}
