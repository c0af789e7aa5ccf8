package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"onpauling/internal/domain"
)

type StayBookingRepository struct {
	db *gorm.DB
}

func NewStayBookingRepository(db *gorm.DB) *StayBookingRepository {
	return &StayBookingRepository{db: db}
}

type stayBookingModel struct {
	ID              uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	Name            string      `gorm:"column:name;not null"`
	Email           string      `gorm:"column:email;not null"`
	Phone           string      `gorm:"column:phone;not null"`
	CountryCode     string      `gorm:"column:country_code;not null;default:'+263'"`
	CheckIn         domain.Date `gorm:"column:check_in;not null"`
	CheckOut        domain.Date `gorm:"column:check_out;not null"`
	RoomType        string      `gorm:"column:room_type;not null"`
	Guests          int         `gorm:"column:guests;not null"`
	SpecialRequests *string     `gorm:"column:special_requests;type:text"`
	Status          string      `gorm:"column:status;not null;default:pending"`
	CreatedAt       time.Time   `gorm:"column:created_at;autoCreateTime;index"`
}

func (stayBookingModel) TableName() string { return "stay_bookings" }

func toDomainStayBooking(m stayBookingModel) *domain.StayBooking {
	var requests string
	if m.SpecialRequests != nil {
		requests = *m.SpecialRequests
	}

	return &domain.StayBooking{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		CountryCode:     m.CountryCode,
		CheckIn:         m.CheckIn,
		CheckOut:        m.CheckOut,
		RoomType:        domain.RoomType(m.RoomType),
		Guests:          m.Guests,
		SpecialRequests: requests,
		Status:          domain.NormalizeStatus(m.Status),
		CreatedAt:       m.CreatedAt,
	}
}

func toStayBookingModel(b *domain.StayBooking) stayBookingModel {
	var requests *string
	if b.SpecialRequests != "" {
		v := b.SpecialRequests
		requests = &v
	}

	return stayBookingModel{
		ID:              b.ID,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		CountryCode:     b.CountryCode,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		RoomType:        string(b.RoomType),
		Guests:          b.Guests,
		SpecialRequests: requests,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}

// Create inserts one row. Id and status are filled in when the caller left them empty.
func (r *StayBookingRepository) Create(ctx context.Context, b *domain.StayBooking) error {
	m := toStayBookingModel(b)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = string(domain.StatusPending)
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert stay booking: %w", err)
	}
	*b = *toDomainStayBooking(m)
	return nil
}

func (r *StayBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.StayBooking, error) {
	var m stayBookingModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get stay booking: %w", err)
	}
	return toDomainStayBooking(m), nil
}

func (r *StayBookingRepository) List(ctx context.Context, f ListFilter) ([]domain.StayBooking, error) {
	var rows []stayBookingModel
	if err := f.apply(r.db.WithContext(ctx)).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list stay bookings: %w", err)
	}

	out := make([]domain.StayBooking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainStayBooking(m))
	}
	return out, nil
}

// UpdateStatus overwrites the status column; last writer wins.
func (r *StayBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	return updateStatus(ctx, r.db, &stayBookingModel{}, id, status)
}
