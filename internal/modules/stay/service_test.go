package stay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"onpauling/internal/domain"
	"onpauling/internal/modules/realtime"
	"onpauling/internal/pkg/logger"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.StayBooking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil && b != nil {
		b.ID = uuid.New() // simulate DB insert
		b.CreatedAt = time.Now()
	}
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(event realtime.Event) {
	m.Called(event)
}

func newTestService(repo BookingRepository, events realtime.Publisher) *Service {
	svc := NewService(repo, events, logger.Discard().Logger)
	svc.now = func() time.Time { return time.Date(2024, time.May, 20, 9, 30, 0, 0, time.UTC) }
	return svc
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		Name:        "Rudo Chikwanha",
		Email:       "rudo@example.com",
		Phone:       "077 123 4567",
		CountryCode: "+263",
		CheckIn:     "2024-06-01",
		CheckOut:    "2024-06-04",
		RoomType:    "presidential",
		Guests:      2,
	}
}

func TestService_Submit_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	events := new(MockPublisher)
	svc := newTestService(repo, events)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.StayBooking) bool {
		return b.Status == domain.StatusPending &&
			b.RoomType == domain.RoomPresidential &&
			b.CheckIn.String() == "2024-06-01" &&
			b.CheckOut.String() == "2024-06-04"
	})).Return(nil).Once()
	events.On("Publish", mock.MatchedBy(func(e realtime.Event) bool {
		return e.Type == realtime.EventStayBookingCreated
	})).Once()

	b, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, 3, b.Nights())

	repo.AssertNumberOfCalls(t, "Create", 1)
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestService_Submit_CheckOutNotAfterCheckIn(t *testing.T) {
	tests := []struct {
		name     string
		checkOut string
	}{
		{"same day", "2024-06-01"},
		{"before", "2024-05-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBookingRepository)
			svc := newTestService(repo, nil)

			req := validRequest()
			req.CheckOut = tt.checkOut

			_, err := svc.Submit(context.Background(), req)
			require.ErrorIs(t, err, domain.ErrValidation)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, "check_out")

			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Submit_CollectsAllFieldErrors(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := newTestService(repo, nil)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Name:        "   ",
		Email:       "not-an-email",
		Phone:       "12",
		CountryCode: "+999",
		CheckIn:     "2024-13-01",
		CheckOut:    "",
		RoomType:    "penthouse",
		Guests:      9,
	})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	for _, field := range []string{"name", "email", "phone", "country_code", "check_in", "check_out", "room_type", "guests"} {
		assert.Contains(t, verr.Fields, field)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Submit_CheckInInPast(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := newTestService(repo, nil)

	req := validRequest()
	req.CheckIn = "2024-05-19"

	_, err := svc.Submit(context.Background(), req)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "cannot be in the past", verr.Fields["check_in"])
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Submit_TodayIsAllowed(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := newTestService(repo, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	req := validRequest()
	req.CheckIn = "2024-05-20"
	req.CheckOut = "2024-05-21"

	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Submit_GuestLimitIsSameForEveryRoom(t *testing.T) {
	for _, room := range domain.RoomTypes {
		t.Run(string(room), func(t *testing.T) {
			repo := new(MockBookingRepository)
			svc := newTestService(repo, nil)
			repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

			req := validRequest()
			req.RoomType = string(room)
			req.Guests = 6
			_, err := svc.Submit(context.Background(), req)
			require.NoError(t, err)

			req.Guests = 7
			_, err = svc.Submit(context.Background(), req)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, "guests")
			repo.AssertNumberOfCalls(t, "Create", 1)
		})
	}
}

func TestService_Submit_RejectsDialCodeOutsideMenu(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := newTestService(repo, nil)

	req := validRequest()
	req.CountryCode = "+33"
	_, err := svc.Submit(context.Background(), req)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "country_code")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Submit_DefaultsCountryCodeAndTrims(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := newTestService(repo, nil)

	var saved *domain.StayBooking
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.StayBooking) }).
		Return(nil).Once()

	req := validRequest()
	req.CountryCode = ""
	req.Name = "  Rudo  "
	req.SpecialRequests = "  late arrival  "

	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "+263", saved.CountryCode)
	assert.Equal(t, "Rudo", saved.Name)
	assert.Equal(t, "late arrival", saved.SpecialRequests)
}

func TestService_Submit_StoreFailure(t *testing.T) {
	repo := new(MockBookingRepository)
	events := new(MockPublisher)
	svc := newTestService(repo, events)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

	b, err := svc.Submit(context.Background(), validRequest())
	assert.Nil(t, b)
	assert.ErrorIs(t, err, domain.ErrSubmissionFailed)
	events.AssertNotCalled(t, "Publish", mock.Anything)
}
