package rental

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"onpauling/internal/domain"
	"onpauling/internal/modules/catalog"
	"onpauling/internal/modules/realtime"
	"onpauling/internal/pkg/logger"
)

type MockRentalRepository struct {
	mock.Mock
}

func (m *MockRentalRepository) Create(ctx context.Context, r *domain.CarRentalRequest) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil && r != nil {
		r.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockRentalRepository) FindOverlapping(ctx context.Context, vehicleType string, pickup, ret domain.Date) ([]domain.CarRentalRequest, error) {
	args := m.Called(ctx, vehicleType, pickup, ret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CarRentalRequest), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(event realtime.Event) {
	m.Called(event)
}

func newTestService(repo RentalRepository, events realtime.Publisher) *Service {
	return NewService(repo, catalog.NewService(), events, logger.Discard().Logger)
}

func row(pickup, ret string, status domain.Status) domain.CarRentalRequest {
	p, _ := domain.ParseDate(pickup)
	r, _ := domain.ParseDate(ret)
	return domain.CarRentalRequest{VehicleType: catalog.VehicleUrbanSedan, PickupDate: p, ReturnDate: r, Status: status}
}

func TestService_CheckAvailability_IgnoresInactiveStatuses(t *testing.T) {
	repo := new(MockRentalRepository)
	svc := newTestService(repo, nil)

	repo.On("FindOverlapping", mock.Anything, catalog.VehicleUrbanSedan, mock.Anything, mock.Anything).
		Return([]domain.CarRentalRequest{
			row("2024-06-01", "2024-06-05", domain.StatusConfirmed),
			row("2024-06-03", "2024-06-04", domain.Status("cancelled")),
			row("2024-06-02", "2024-06-06", domain.StatusPending),
		}, nil).Once()

	a, err := svc.CheckAvailability(context.Background(), AvailabilityQuery{
		VehicleType: catalog.VehicleUrbanSedan,
		PickupDate:  "2024-06-04",
		ReturnDate:  "2024-06-08",
	})
	require.NoError(t, err)
	assert.False(t, a.Available)
	assert.Equal(t, 2, a.Conflicts)
	repo.AssertExpectations(t)
}

func TestService_CheckAvailability_Validation(t *testing.T) {
	tests := []struct {
		name  string
		query AvailabilityQuery
		field string
	}{
		{"unknown vehicle", AvailabilityQuery{VehicleType: "Bus", PickupDate: "2024-06-01", ReturnDate: "2024-06-02"}, "vehicle_type"},
		{"missing pickup", AvailabilityQuery{VehicleType: catalog.VehicleUrbanSedan, ReturnDate: "2024-06-02"}, "pickup_date"},
		{"bad return", AvailabilityQuery{VehicleType: catalog.VehicleUrbanSedan, PickupDate: "2024-06-01", ReturnDate: "06/02/2024"}, "return_date"},
		{"return before pickup", AvailabilityQuery{VehicleType: catalog.VehicleUrbanSedan, PickupDate: "2024-06-05", ReturnDate: "2024-06-01"}, "return_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRentalRepository)
			svc := newTestService(repo, nil)

			_, err := svc.CheckAvailability(context.Background(), tt.query)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)
			repo.AssertNotCalled(t, "FindOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_CheckAvailability_SameDayRental(t *testing.T) {
	repo := new(MockRentalRepository)
	svc := newTestService(repo, nil)
	repo.On("FindOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.CarRentalRequest{}, nil).Once()

	a, err := svc.CheckAvailability(context.Background(), AvailabilityQuery{
		VehicleType: catalog.VehicleSafari4x4,
		PickupDate:  "2024-06-01",
		ReturnDate:  "2024-06-01",
	})
	require.NoError(t, err)
	assert.True(t, a.Available)
}

func TestService_CheckAvailability_StoreFailure(t *testing.T) {
	repo := new(MockRentalRepository)
	svc := newTestService(repo, nil)
	repo.On("FindOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout")).Once()

	a, err := svc.CheckAvailability(context.Background(), AvailabilityQuery{
		VehicleType: catalog.VehicleUrbanSedan,
		PickupDate:  "2024-06-01",
		ReturnDate:  "2024-06-02",
	})
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrCheckFailed)
}

func TestService_Submit_DedupesAddOnsAndPublishes(t *testing.T) {
	repo := new(MockRentalRepository)
	events := new(MockPublisher)
	svc := newTestService(repo, events)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.CarRentalRequest) bool {
		return r.Status == domain.StatusPending &&
			assert.ObjectsAreEqual([]string{"GPS Navigation", "Child Seat"}, r.AddOns)
	})).Return(nil).Once()
	events.On("Publish", mock.MatchedBy(func(e realtime.Event) bool {
		return e.Type == realtime.EventCarRentalCreated
	})).Once()

	r, err := svc.Submit(context.Background(), SubmitRequest{
		PickupDate:  "2024-06-10",
		ReturnDate:  "2024-06-12",
		VehicleType: catalog.VehicleStandardSUV,
		AddOns:      []string{"GPS Navigation", "Child Seat", "GPS Navigation"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, r.ID)
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestService_Submit_DoesNotCheckAvailability(t *testing.T) {
	repo := new(MockRentalRepository)
	svc := newTestService(repo, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.Submit(context.Background(), SubmitRequest{
		PickupDate:  "2024-06-01",
		ReturnDate:  "2024-06-05",
		VehicleType: catalog.VehicleUrbanSedan,
	})
	require.NoError(t, err)
	repo.AssertNotCalled(t, "FindOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Submit_Validation(t *testing.T) {
	repo := new(MockRentalRepository)
	svc := newTestService(repo, nil)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		CustomerEmail: "nope",
		CustomerPhone: "abc",
		PickupDate:    "2024-06-05",
		ReturnDate:    "2024-06-01",
		VehicleType:   "Tank",
		AddOns:        []string{"Jet Ski"},
	})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	for _, field := range []string{"customer_email", "customer_phone", "return_date", "vehicle_type", "add_ons"} {
		assert.Contains(t, verr.Fields, field)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Submit_StoreFailure(t *testing.T) {
	repo := new(MockRentalRepository)
	svc := newTestService(repo, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	_, err := svc.Submit(context.Background(), SubmitRequest{
		PickupDate:  "2024-06-01",
		ReturnDate:  "2024-06-02",
		VehicleType: catalog.VehicleUrbanSedan,
	})
	assert.ErrorIs(t, err, domain.ErrSubmissionFailed)
}
