package stay

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"onpauling/internal/domain"
	"onpauling/internal/modules/realtime"
	"onpauling/internal/pkg/phone"
	"onpauling/internal/pkg/validator"
)

type Service struct {
	bookings BookingRepository
	events   realtime.Publisher
	log      *slog.Logger
	now      func() time.Time
}

func NewService(bookings BookingRepository, events realtime.Publisher, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		bookings: bookings,
		events:   events,
		log:      log,
		now:      time.Now,
	}
}

// Submit validates the form and, only when every field passes, inserts one
// pending booking. Availability is not checked: staff confirm manually.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.StayBooking, error) {
	b, err := s.buildBooking(req)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		s.log.Error("stay booking insert failed",
			"room_type", b.RoomType,
			"check_in", b.CheckIn.String(),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
	}

	s.log.Info("stay booking submitted", "booking_id", b.ID, "room_type", b.RoomType, "nights", b.Nights())
	if s.events != nil {
		s.events.Publish(realtime.NewEvent(realtime.EventStayBookingCreated, map[string]any{
			"id":        b.ID,
			"room_type": b.RoomType,
			"check_in":  b.CheckIn,
			"check_out": b.CheckOut,
		}))
	}
	return b, nil
}

func (s *Service) buildBooking(req SubmitRequest) (*domain.StayBooking, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.CountryCode = strings.TrimSpace(req.CountryCode)
	req.SpecialRequests = strings.TrimSpace(req.SpecialRequests)
	if req.CountryCode == "" {
		req.CountryCode = phone.DefaultDialCode
	}

	verr := domain.NewValidationError()
	for field, msg := range validator.Validate(req) {
		verr.Add(field, msg)
	}

	checkIn, checkOut := s.parseRange(req, verr)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return &domain.StayBooking{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		CountryCode:     req.CountryCode,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		RoomType:        domain.RoomType(req.RoomType),
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		Status:          domain.StatusPending,
	}, nil
}

// parseRange adds date field errors to verr. Check-out must fall strictly
// after check-in, and check-in cannot be earlier than today.
func (s *Service) parseRange(req SubmitRequest, verr *domain.ValidationError) (domain.Date, domain.Date) {
	var checkIn, checkOut domain.Date
	var err error

	if !verr.Has(fieldCheckIn) {
		if checkIn, err = domain.ParseDate(req.CheckIn); err != nil {
			verr.Add(fieldCheckIn, "must be a date in YYYY-MM-DD format")
		} else if checkIn.Before(domain.DateOf(s.now())) {
			verr.Add(fieldCheckIn, "cannot be in the past")
		}
	}
	if !verr.Has(fieldCheckOut) {
		if checkOut, err = domain.ParseDate(req.CheckOut); err != nil {
			verr.Add(fieldCheckOut, "must be a date in YYYY-MM-DD format")
		}
	}

	if !checkIn.IsZero() && !checkOut.IsZero() && !checkOut.After(checkIn) {
		verr.Add(fieldCheckOut, "must be after check-in date")
	}
	return checkIn, checkOut
}
