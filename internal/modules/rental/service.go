package rental

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"onpauling/internal/domain"
	"onpauling/internal/modules/realtime"
	"onpauling/internal/pkg/validator"
)

type Service struct {
	rentals RentalRepository
	fleet   Fleet
	events  realtime.Publisher
	log     *slog.Logger
}

func NewService(rentals RentalRepository, fleet Fleet, events realtime.Publisher, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		rentals: rentals,
		fleet:   fleet,
		events:  events,
		log:     log,
	}
}

// CheckAvailability reports whether any pending or confirmed request for the
// vehicle type overlaps the inclusive range. It is advisory: nothing is held.
func (s *Service) CheckAvailability(ctx context.Context, q AvailabilityQuery) (*domain.Availability, error) {
	q.VehicleType = strings.TrimSpace(q.VehicleType)

	verr := domain.NewValidationError()
	for field, msg := range validator.Validate(q) {
		verr.Add(field, msg)
	}
	s.checkVehicle(q.VehicleType, verr)
	pickup, ret := parseRange(q.PickupDate, q.ReturnDate, verr)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	rows, err := s.rentals.FindOverlapping(ctx, q.VehicleType, pickup, ret)
	if err != nil {
		s.log.Error("availability query failed", "vehicle_type", q.VehicleType, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrCheckFailed, err)
	}

	requested := domain.DateRange{Start: pickup, End: ret}
	conflicts := 0
	for _, row := range rows {
		if row.Status.IsActive() && row.Range().Overlaps(requested) {
			conflicts++
		}
	}

	return &domain.Availability{
		VehicleType: q.VehicleType,
		PickupDate:  pickup,
		ReturnDate:  ret,
		Available:   conflicts == 0,
		Conflicts:   conflicts,
	}, nil
}

// Submit inserts one pending request. It does not repeat the availability
// check; two guests can still request the same vehicle for the same days.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.CarRentalRequest, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.VehicleType = strings.TrimSpace(req.VehicleType)

	verr := domain.NewValidationError()
	for field, msg := range validator.Validate(req) {
		verr.Add(field, msg)
	}
	s.checkVehicle(req.VehicleType, verr)
	pickup, ret := parseRange(req.PickupDate, req.ReturnDate, verr)
	addOns := s.normalizeAddOns(req.AddOns, verr)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	r := &domain.CarRentalRequest{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PickupDate:    pickup,
		ReturnDate:    ret,
		VehicleType:   req.VehicleType,
		AddOns:        addOns,
		Status:        domain.StatusPending,
	}
	if err := s.rentals.Create(ctx, r); err != nil {
		s.log.Error("car rental insert failed", "vehicle_type", r.VehicleType, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
	}

	s.log.Info("car rental requested", "request_id", r.ID, "vehicle_type", r.VehicleType, "add_ons", len(r.AddOns))
	if s.events != nil {
		s.events.Publish(realtime.NewEvent(realtime.EventCarRentalCreated, map[string]any{
			"id":           r.ID,
			"vehicle_type": r.VehicleType,
			"pickup_date":  r.PickupDate,
			"return_date":  r.ReturnDate,
		}))
	}
	return r, nil
}

func (s *Service) checkVehicle(vehicleType string, verr *domain.ValidationError) {
	if vehicleType != "" && !s.fleet.IsVehicleType(vehicleType) {
		verr.Add(fieldVehicleType, "is not a vehicle in our fleet")
	}
}

// normalizeAddOns drops duplicates keeping first-seen order.
func (s *Service) normalizeAddOns(in []string, verr *domain.ValidationError) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, a := range in {
		a = strings.TrimSpace(a)
		if _, dup := seen[a]; dup {
			continue
		}
		if !s.fleet.IsAddOn(a) {
			verr.Add(fieldAddOns, fmt.Sprintf("%q is not an available add-on", a))
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

func parseRange(pickupRaw, returnRaw string, verr *domain.ValidationError) (domain.Date, domain.Date) {
	var pickup, ret domain.Date
	var err error

	if !verr.Has(fieldPickupDate) {
		if pickup, err = domain.ParseDate(pickupRaw); err != nil {
			verr.Add(fieldPickupDate, "must be a date in YYYY-MM-DD format")
		}
	}
	if !verr.Has(fieldReturnDate) {
		if ret, err = domain.ParseDate(returnRaw); err != nil {
			verr.Add(fieldReturnDate, "must be a date in YYYY-MM-DD format")
		}
	}
	if !pickup.IsZero() && !ret.IsZero() && ret.Before(pickup) {
		verr.Add(fieldReturnDate, "must be on or after pickup date")
	}
	return pickup, ret
}
