package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"onpauling/internal/domain"
	"onpauling/internal/modules/realtime"
	"onpauling/internal/pkg/jwt"
	"onpauling/internal/pkg/phone"
	"onpauling/internal/repository"
)

const tokenSubject = "admin"

// HashPassword is run once at startup on the configured shared password.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

type Service struct {
	stays        StayBookingRepository
	rentals      CarRentalRepository
	stats        StatsRepository
	subscribers  SubscriberCounter
	tokens       *jwt.Service
	passwordHash []byte
	events       realtime.Publisher
	log          *slog.Logger
}

func NewService(
	stays StayBookingRepository,
	rentals CarRentalRepository,
	stats StatsRepository,
	subscribers SubscriberCounter,
	tokens *jwt.Service,
	passwordHash []byte,
	events realtime.Publisher,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		stays:        stays,
		rentals:      rentals,
		stats:        stats,
		subscribers:  subscribers,
		tokens:       tokens,
		passwordHash: passwordHash,
		events:       events,
		log:          log,
	}
}

// Login checks the shared dashboard password and issues a session token.
func (s *Service) Login(ctx context.Context, password string) (*LoginResponse, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.log.Warn("admin login rejected")
		return nil, ErrInvalidPassword
	}

	token, expires, err := s.tokens.GenerateToken(tokenSubject)
	if err != nil {
		return nil, fmt.Errorf("issue admin token: %w", err)
	}
	s.log.Info("admin login", "expires_at", expires)
	return &LoginResponse{Token: token, ExpiresAt: expires}, nil
}

// ValidateAdminToken lets the websocket feed reuse the dashboard session.
func (s *Service) ValidateAdminToken(token string) error {
	_, err := s.tokens.ValidateToken(token)
	return err
}

func (s *Service) ListStayBookings(ctx context.Context, f repository.ListFilter) ([]StayBookingView, error) {
	rows, err := s.stays.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]StayBookingView, 0, len(rows))
	for _, b := range rows {
		out = append(out, StayBookingView{
			StayBooking: b,
			PhoneE164:   phone.E164(b.CountryCode, b.Phone),
			Nights:      b.Nights(),
		})
	}
	return out, nil
}

func (s *Service) ListCarRentals(ctx context.Context, f repository.ListFilter) ([]CarRentalView, error) {
	rows, err := s.rentals.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]CarRentalView, 0, len(rows))
	for _, r := range rows {
		out = append(out, CarRentalView{
			CarRentalRequest:  r,
			CustomerPhoneE164: phone.E164(phone.DefaultDialCode, r.CustomerPhone),
		})
	}
	return out, nil
}

func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	stays, err := s.tableStats(ctx, repository.TableStayBookings)
	if err != nil {
		return nil, err
	}
	rentals, err := s.tableStats(ctx, repository.TableCarRentals)
	if err != nil {
		return nil, err
	}
	subscribers, err := s.subscribers.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		StayBookings: stays,
		CarRentals:   rentals,
		Subscribers:  subscribers,
	}, nil
}

func (s *Service) tableStats(ctx context.Context, table string) (TableStats, error) {
	counts, err := s.stats.CountByStatus(ctx, table)
	if err != nil {
		return TableStats{}, err
	}

	var ts TableStats
	for raw, n := range counts {
		ts.Total += n
		switch domain.NormalizeStatus(raw) {
		case domain.StatusPending:
			ts.Pending += n
		case domain.StatusConfirmed:
			ts.Confirmed += n
		}
	}
	return ts, nil
}

// Confirm moves a stay booking or rental request to confirmed. Confirming an
// already confirmed record is a no-op. There is no version check: a
// concurrent writer can still overwrite the status afterwards.
func (s *Service) Confirm(ctx context.Context, kind Kind, id uuid.UUID) (*ConfirmResult, error) {
	var current domain.Status
	var update func(context.Context, uuid.UUID, domain.Status) error

	switch kind {
	case KindStay:
		b, err := s.stays.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		current, update = b.Status, s.stays.UpdateStatus
	case KindCar:
		r, err := s.rentals.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		current, update = r.Status, s.rentals.UpdateStatus
	default:
		return nil, ErrUnknownKind
	}

	result := &ConfirmResult{Kind: kind, ID: id.String(), Status: domain.StatusConfirmed}
	if current == domain.StatusConfirmed {
		return result, nil
	}

	if err := update(ctx, id, domain.StatusConfirmed); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Error("confirm failed", "kind", kind, "id", id, "error", err)
		}
		return nil, err
	}
	result.Changed = true

	s.log.Info("booking confirmed", "kind", kind, "id", id, "previous_status", current)
	if s.events != nil {
		s.events.Publish(realtime.NewEvent(realtime.EventBookingConfirmed, result))
	}
	return result, nil
}
