package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"onpauling/internal/domain"
)

type CarRentalRepository struct {
	db *gorm.DB
}

func NewCarRentalRepository(db *gorm.DB) *CarRentalRepository {
	return &CarRentalRepository{db: db}
}

type carRentalModel struct {
	ID            uuid.UUID                   `gorm:"column:id;type:uuid;primaryKey"`
	CustomerName  *string                     `gorm:"column:customer_name"`
	CustomerEmail *string                     `gorm:"column:customer_email"`
	CustomerPhone *string                     `gorm:"column:customer_phone"`
	PickupDate    domain.Date                 `gorm:"column:pickup_date;not null;index:idx_car_rental_vehicle_dates,priority:2"`
	ReturnDate    domain.Date                 `gorm:"column:return_date;not null;index:idx_car_rental_vehicle_dates,priority:3"`
	VehicleType   string                      `gorm:"column:vehicle_type;not null;index:idx_car_rental_vehicle_dates,priority:1"`
	AddOns        datatypes.JSONSlice[string] `gorm:"column:add_ons"`
	Status        string                      `gorm:"column:status;not null;default:pending"`
	CreatedAt     time.Time                   `gorm:"column:created_at;autoCreateTime;index"`
}

func (carRentalModel) TableName() string { return "car_rental_requests" }

func toDomainCarRental(m carRentalModel) *domain.CarRentalRequest {
	addOns := []string(m.AddOns)
	if addOns == nil {
		addOns = []string{}
	}
	return &domain.CarRentalRequest{
		ID:            m.ID,
		CustomerName:  deref(m.CustomerName),
		CustomerEmail: deref(m.CustomerEmail),
		CustomerPhone: deref(m.CustomerPhone),
		PickupDate:    m.PickupDate,
		ReturnDate:    m.ReturnDate,
		VehicleType:   m.VehicleType,
		AddOns:        addOns,
		Status:        domain.NormalizeStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

func toCarRentalModel(r *domain.CarRentalRequest) carRentalModel {
	addOns := r.AddOns
	if addOns == nil {
		addOns = []string{}
	}
	return carRentalModel{
		ID:            r.ID,
		CustomerName:  optional(r.CustomerName),
		CustomerEmail: optional(r.CustomerEmail),
		CustomerPhone: optional(r.CustomerPhone),
		PickupDate:    r.PickupDate,
		ReturnDate:    r.ReturnDate,
		VehicleType:   r.VehicleType,
		AddOns:        datatypes.JSONSlice[string](addOns),
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}

func (r *CarRentalRepository) Create(ctx context.Context, req *domain.CarRentalRequest) error {
	m := toCarRentalModel(req)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = string(domain.StatusPending)
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert car rental request: %w", err)
	}
	*req = *toDomainCarRental(m)
	return nil
}

func (r *CarRentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CarRentalRequest, error) {
	var m carRentalModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get car rental request: %w", err)
	}
	return toDomainCarRental(m), nil
}

func (r *CarRentalRepository) List(ctx context.Context, f ListFilter) ([]domain.CarRentalRequest, error) {
	var rows []carRentalModel
	if err := f.apply(r.db.WithContext(ctx)).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list car rental requests: %w", err)
	}

	out := make([]domain.CarRentalRequest, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCarRental(m))
	}
	return out, nil
}

// FindOverlapping returns the requests for vehicleType whose inclusive date
// range intersects [pickup, ret] and whose stored status is pending or
// confirmed.
func (r *CarRentalRepository) FindOverlapping(ctx context.Context, vehicleType string, pickup, ret domain.Date) ([]domain.CarRentalRequest, error) {
	var rows []carRentalModel
	err := r.db.WithContext(ctx).
		Where("vehicle_type = ?", vehicleType).
		Where("return_date >= ?", pickup).
		Where("pickup_date <= ?", ret).
		Where("status IN ?", activeStatuses()).
		Order("pickup_date asc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find overlapping rentals: %w", err)
	}

	out := make([]domain.CarRentalRequest, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCarRental(m))
	}
	return out, nil
}

func (r *CarRentalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	return updateStatus(ctx, r.db, &carRentalModel{}, id, status)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
