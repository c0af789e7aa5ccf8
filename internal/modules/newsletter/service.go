package newsletter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"onpauling/internal/domain"
	"onpauling/internal/pkg/validator"
)

type Repository interface {
	Create(ctx context.Context, s *domain.NewsletterSubscriber) error
	GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, log: log}
}

// Subscribe is idempotent per email: a known address returns the existing
// subscription with created=false.
func (s *Service) Subscribe(ctx context.Context, req SubscribeRequest) (*domain.NewsletterSubscriber, bool, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Source = strings.TrimSpace(req.Source)

	if fields := validator.Validate(req); fields != nil {
		verr := domain.NewValidationError()
		for field, msg := range fields {
			verr.Add(field, msg)
		}
		return nil, false, verr
	}
	if req.Source == "" {
		req.Source = defaultSource
	}

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("newsletter lookup failed", "error", err)
		return nil, false, fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	sub := &domain.NewsletterSubscriber{Email: req.Email, Source: req.Source}
	if err := s.repo.Create(ctx, sub); err != nil {
		if errors.Is(err, ErrEmailExists) {
			// lost a race with another signup for the same address
			if existing, lookupErr := s.repo.GetByEmail(ctx, req.Email); lookupErr == nil && existing != nil {
				return existing, false, nil
			}
		}
		s.log.Error("newsletter insert failed", "error", err)
		return nil, false, fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
	}

	s.log.Info("newsletter subscription", "subscriber_id", sub.ID, "source", sub.Source)
	return sub, true, nil
}
