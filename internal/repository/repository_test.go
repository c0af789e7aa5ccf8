package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"onpauling/internal/database"
	"onpauling/internal/domain"
)

func setupTestDB(t *testing.T) (*gorm.DB, *sqlx.DB) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", name)

	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, Models()...))

	sqlDB, err := database.SQLX(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db, sqlDB
}

func rental(vehicle, pickup, ret string, status domain.Status) *domain.CarRentalRequest {
	p, _ := domain.ParseDate(pickup)
	r, _ := domain.ParseDate(ret)
	return &domain.CarRentalRequest{
		VehicleType: vehicle,
		PickupDate:  p,
		ReturnDate:  r,
		Status:      status,
	}
}

func TestStayBookingRepository_CreateAndGet(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewStayBookingRepository(db)
	ctx := context.Background()

	b := &domain.StayBooking{
		Name:        "Tendai Moyo",
		Email:       "tendai@example.com",
		Phone:       "0771234567",
		CountryCode: "+263",
		CheckIn:     domain.NewDate(2024, time.July, 1),
		CheckOut:    domain.NewDate(2024, time.July, 4),
		RoomType:    domain.RoomExecutive,
		Guests:      2,
	}
	require.NoError(t, repo.Create(ctx, b))
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, domain.StatusPending, b.Status)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tendai Moyo", got.Name)
	assert.True(t, got.CheckIn.Equal(b.CheckIn))
	assert.True(t, got.CheckOut.Equal(b.CheckOut))
	assert.Equal(t, domain.RoomExecutive, got.RoomType)
	assert.Empty(t, got.SpecialRequests)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStayBookingRepository_ListAndUpdateStatus(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewStayBookingRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		b := &domain.StayBooking{
			Name:        fmt.Sprintf("Guest %d", i),
			Email:       "guest@example.com",
			Phone:       "0771234567",
			CountryCode: "+263",
			CheckIn:     domain.NewDate(2024, time.August, 1),
			CheckOut:    domain.NewDate(2024, time.August, 3),
			RoomType:    domain.RoomDeluxe,
			Guests:      1,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, b))
		ids = append(ids, b.ID)
	}

	all, err := repo.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[2], all[0].ID, "newest first")

	require.NoError(t, repo.UpdateStatus(ctx, ids[0], domain.StatusConfirmed))

	confirmed := domain.StatusConfirmed
	rows, err := repo.List(ctx, ListFilter{Status: &confirmed})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, ids[0], rows[0].ID)

	page, err := repo.List(ctx, ListFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[1], page[0].ID)

	err = repo.UpdateStatus(ctx, uuid.New(), domain.StatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListFilter_Normalized(t *testing.T) {
	f := ListFilter{Limit: 500, Offset: -3}.normalized()
	assert.Equal(t, MaxListLimit, f.Limit)
	assert.Equal(t, 0, f.Offset)

	f = ListFilter{}.normalized()
	assert.Equal(t, DefaultListLimit, f.Limit)
}

func TestCarRentalRepository_AddOnsRoundTrip(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewCarRentalRepository(db)
	ctx := context.Background()

	req := rental("Safari 4x4", "2024-09-10", "2024-09-14", "")
	req.CustomerName = "Anna"
	req.AddOns = []string{"GPS Navigation", "Camping Gear"}
	require.NoError(t, repo.Create(ctx, req))

	got, err := repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"GPS Navigation", "Camping Gear"}, got.AddOns)
	assert.Equal(t, "Anna", got.CustomerName)
	assert.Empty(t, got.CustomerEmail)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestCarRentalRepository_FindOverlapping(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewCarRentalRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, rental("Urban Sedan", "2024-06-01", "2024-06-05", domain.StatusConfirmed)))
	require.NoError(t, repo.Create(ctx, rental("Urban Sedan", "2024-07-01", "2024-07-03", domain.StatusPending)))
	require.NoError(t, repo.Create(ctx, rental("Safari 4x4", "2024-06-02", "2024-06-04", domain.StatusPending)))

	tests := []struct {
		name   string
		pickup string
		ret    string
		want   int
	}{
		{"partial overlap", "2024-06-04", "2024-06-08", 1},
		{"after", "2024-06-06", "2024-06-10", 0},
		{"before", "2024-05-20", "2024-05-31", 0},
		{"touching start", "2024-05-28", "2024-06-01", 1},
		{"touching end", "2024-06-05", "2024-06-09", 1},
		{"spans both", "2024-05-01", "2024-07-31", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := domain.ParseDate(tt.pickup)
			r, _ := domain.ParseDate(tt.ret)
			rows, err := repo.FindOverlapping(ctx, "Urban Sedan", p, r)
			require.NoError(t, err)
			assert.Len(t, rows, tt.want)
			for _, row := range rows {
				assert.Equal(t, "Urban Sedan", row.VehicleType)
			}
		})
	}
}

func TestCarRentalRepository_FindOverlappingSkipsLegacyStatuses(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewCarRentalRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, rental("Urban Sedan", "2024-06-01", "2024-06-05", "held")))
	require.NoError(t, repo.Create(ctx, rental("Urban Sedan", "2024-06-02", "2024-06-04", "booked")))
	require.NoError(t, repo.Create(ctx, rental("Urban Sedan", "2024-06-03", "2024-06-03", "cancelled")))

	p, _ := domain.ParseDate("2024-06-02")
	r, _ := domain.ParseDate("2024-06-03")
	rows, err := repo.FindOverlapping(ctx, "Urban Sedan", p, r)
	require.NoError(t, err)
	assert.Empty(t, rows)

	require.NoError(t, repo.Create(ctx, rental("Urban Sedan", "2024-06-03", "2024-06-06", domain.StatusPending)))
	rows, err = repo.FindOverlapping(ctx, "Urban Sedan", p, r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.StatusPending, rows[0].Status)
}

func TestCarRentalRepository_ListFoldsLegacyStatuses(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewCarRentalRepository(db)
	ctx := context.Background()

	held := rental("Safari 4x4", "2024-06-01", "2024-06-02", "held")
	booked := rental("Safari 4x4", "2024-06-03", "2024-06-04", "booked")
	pending := rental("Safari 4x4", "2024-06-05", "2024-06-06", domain.StatusPending)
	for _, r := range []*domain.CarRentalRequest{held, booked, pending} {
		require.NoError(t, repo.Create(ctx, r))
	}

	pendingFilter := domain.StatusPending
	rows, err := repo.List(ctx, ListFilter{Status: &pendingFilter})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	ids := []uuid.UUID{rows[0].ID, rows[1].ID}
	assert.ElementsMatch(t, []uuid.UUID{held.ID, pending.ID}, ids)
	for _, row := range rows {
		assert.Equal(t, domain.StatusPending, row.Status)
	}

	confirmedFilter := domain.StatusConfirmed
	rows, err = repo.List(ctx, ListFilter{Status: &confirmedFilter})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, booked.ID, rows[0].ID)
	assert.Equal(t, domain.StatusConfirmed, rows[0].Status)
}

func TestNewsletterRepository(t *testing.T) {
	_, sqlDB := setupTestDB(t)
	repo := NewNewsletterRepository(sqlDB)
	ctx := context.Background()

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	s := &domain.NewsletterSubscriber{Email: " Guest@Example.com ", Source: "footer"}
	require.NoError(t, repo.Create(ctx, s))
	assert.Equal(t, "guest@example.com", s.Email)

	got, err := repo.GetByEmail(ctx, "GUEST@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, "footer", got.Source)

	err = repo.Create(ctx, &domain.NewsletterSubscriber{Email: "guest@example.com", Source: "footer"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestStatsRepository_CountByStatus(t *testing.T) {
	db, sqlDB := setupTestDB(t)
	rentals := NewCarRentalRepository(db)
	stats := NewStatsRepository(sqlDB)
	ctx := context.Background()

	require.NoError(t, rentals.Create(ctx, rental("Urban Sedan", "2024-06-01", "2024-06-05", domain.StatusConfirmed)))
	require.NoError(t, rentals.Create(ctx, rental("Urban Sedan", "2024-06-10", "2024-06-12", domain.StatusPending)))
	require.NoError(t, rentals.Create(ctx, rental("Urban Sedan", "2024-06-20", "2024-06-22", domain.StatusPending)))

	counts, err := stats.CountByStatus(ctx, TableCarRentals)
	require.NoError(t, err)
	assert.Equal(t, 2, counts["pending"])
	assert.Equal(t, 1, counts["confirmed"])

	empty, err := stats.CountByStatus(ctx, TableStayBookings)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = stats.CountByStatus(ctx, "users")
	assert.Error(t, err)
}
