package main

import (
	"context"
	"time"

	"onpauling/internal/config"
	"onpauling/internal/database"
	"onpauling/internal/domain"
	"onpauling/internal/modules/catalog"
	"onpauling/internal/pkg/logger"
	"onpauling/internal/repository"
)

func main() {
	log := logger.New(logger.Config{Format: logger.TEXT, Service: "onpauling-seed"})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "error", err)
	}
	if cfg.IsProduction() {
		log.Fatal("refusing to seed a production database")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed", "error", err)
	}
	if err := database.Migrate(db, repository.Models()...); err != nil {
		log.Fatal("migrate failed", "error", err)
	}

	log.Info("cleaning old data")
	db.Exec("DELETE FROM stay_bookings")
	db.Exec("DELETE FROM car_rental_requests")
	db.Exec("DELETE FROM newsletter_subscribers")

	ctx := context.Background()
	stays := repository.NewStayBookingRepository(db)
	rentals := repository.NewCarRentalRepository(db)
	sqlDB, err := database.SQLX(db)
	if err != nil {
		log.Fatal("sqlx wrap failed", "error", err)
	}
	subscribers := repository.NewNewsletterRepository(sqlDB)

	// ================== STAYS ==================
	today := domain.DateOf(time.Now())
	demoStays := []domain.StayBooking{
		{Name: "Tendai Moyo", Email: "tendai@example.com", Phone: "0771234567", CountryCode: "+263",
			CheckIn: today.AddDays(7), CheckOut: today.AddDays(10), RoomType: domain.RoomPresidential, Guests: 2,
			Status: domain.StatusPending, SpecialRequests: "Airport pickup please"},
		{Name: "Sarah Collins", Email: "sarah.c@example.co.uk", Phone: "07911 123456", CountryCode: "+44",
			CheckIn: today.AddDays(14), CheckOut: today.AddDays(16), RoomType: domain.RoomExecutive, Guests: 1,
			Status: domain.StatusConfirmed},
		{Name: "Pieter van Wyk", Email: "pieter@example.co.za", Phone: "082 555 0199", CountryCode: "+27",
			CheckIn: today.AddDays(3), CheckOut: today.AddDays(5), RoomType: domain.RoomDeluxe, Guests: 2,
			Status: domain.StatusPending},
	}
	for i := range demoStays {
		if err := stays.Create(ctx, &demoStays[i]); err != nil {
			log.Fatal("create stay booking failed", "error", err)
		}
	}
	log.Info("stay bookings created", "count", len(demoStays))

	// ================== RENTALS ==================
	june := func(day int) domain.Date { return domain.NewDate(2024, time.June, day) }
	demoRentals := []domain.CarRentalRequest{
		// availability demo: Urban Sedan taken 2024-06-01..05
		{CustomerName: "Nyasha Dube", CustomerPhone: "0772000111", VehicleType: catalog.VehicleUrbanSedan,
			PickupDate: june(1), ReturnDate: june(5), Status: domain.StatusConfirmed},
		{CustomerName: "Mark Ellis", CustomerEmail: "mark@example.com", VehicleType: catalog.VehicleSafari4x4,
			PickupDate: june(10), ReturnDate: june(17), AddOns: []string{"GPS Navigation", "Camping Gear"},
			Status: domain.StatusPending},
		{VehicleType: catalog.VehicleExecutiveSUV, PickupDate: today.AddDays(7), ReturnDate: today.AddDays(10),
			AddOns: []string{"Chauffeur"}, Status: domain.StatusPending},
	}
	for i := range demoRentals {
		if err := rentals.Create(ctx, &demoRentals[i]); err != nil {
			log.Fatal("create rental request failed", "error", err)
		}
	}
	log.Info("rental requests created", "count", len(demoRentals))

	// ================== NEWSLETTER ==================
	for _, email := range []string{"traveller@example.com", "birder@example.org"} {
		if err := subscribers.Create(ctx, &domain.NewsletterSubscriber{Email: email, Source: "seed"}); err != nil {
			log.Fatal("create subscriber failed", "error", err)
		}
	}

	log.Info("seed completed", "admin_password_env", "ADMIN_PASSWORD")
}
