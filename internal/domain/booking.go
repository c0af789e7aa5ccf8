package domain

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

// ActiveStatuses are the statuses that hold a vehicle for availability purposes.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

func (s Status) IsActive() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// NormalizeStatus folds legacy dashboard values into the two-value lifecycle.
// Rows written before the status column had a default may carry "" or "held".
func NormalizeStatus(s string) Status {
	switch s {
	case "", "pending", "held":
		return StatusPending
	case "confirmed", "booked":
		return StatusConfirmed
	default:
		return Status(s)
	}
}

// StoredValues lists the raw column values that NormalizeStatus folds into s.
func (s Status) StoredValues() []string {
	switch s {
	case StatusPending:
		return []string{"pending", "", "held"}
	case StatusConfirmed:
		return []string{"confirmed", "booked"}
	default:
		return []string{string(s)}
	}
}

type RoomType string

const (
	RoomPresidential RoomType = "presidential"
	RoomExecutive    RoomType = "executive"
	RoomDeluxe       RoomType = "deluxe"
)

var RoomTypes = []RoomType{RoomPresidential, RoomExecutive, RoomDeluxe}

func (r RoomType) Valid() bool {
	for _, rt := range RoomTypes {
		if r == rt {
			return true
		}
	}
	return false
}

// StayBooking is a guest's request to reserve a suite for a date range.
type StayBooking struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	CountryCode     string    `json:"country_code"`
	CheckIn         Date      `json:"check_in"`
	CheckOut        Date      `json:"check_out"`
	RoomType        RoomType  `json:"room_type"`
	Guests          int       `json:"guests"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func (b *StayBooking) Range() DateRange {
	return DateRange{Start: b.CheckIn, End: b.CheckOut}
}

// Nights is the number of nights between check-in and check-out.
func (b *StayBooking) Nights() int {
	return int(b.CheckOut.Time().Sub(b.CheckIn.Time()).Hours() / 24)
}
