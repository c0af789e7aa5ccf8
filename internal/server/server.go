// Package server wires repositories, services and handlers into one gin engine.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"onpauling/internal/config"
	"onpauling/internal/database"
	"onpauling/internal/middleware"
	"onpauling/internal/modules/admin"
	"onpauling/internal/modules/catalog"
	"onpauling/internal/modules/newsletter"
	"onpauling/internal/modules/realtime"
	"onpauling/internal/modules/rental"
	"onpauling/internal/modules/stay"
	"onpauling/internal/pkg/jwt"
	"onpauling/internal/pkg/response"
	"onpauling/internal/repository"
)

type Server struct {
	Engine *gin.Engine
	Hub    *realtime.Hub
	db     *gorm.DB
}

func New(cfg *config.Config, db *gorm.DB, log *slog.Logger) (*Server, error) {
	sqlDB, err := database.SQLX(db)
	if err != nil {
		return nil, err
	}

	passwordHash, err := admin.HashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	stayRepo := repository.NewStayBookingRepository(db)
	rentalRepo := repository.NewCarRentalRepository(db)
	newsletterRepo := repository.NewNewsletterRepository(sqlDB)
	statsRepo := repository.NewStatsRepository(sqlDB)

	hub := realtime.NewHub(log.With("component", "realtime"))
	tokens := jwt.New(cfg.JWTSecret, cfg.AdminSessionTTL)

	catalogService := catalog.NewService()
	stayService := stay.NewService(stayRepo, hub, log.With("module", "stay"))
	rentalService := rental.NewService(rentalRepo, catalogService, hub, log.With("module", "rental"))
	newsletterService := newsletter.NewService(newsletterRepo, log.With("module", "newsletter"))
	adminService := admin.NewService(stayRepo, rentalRepo, statsRepo, newsletterRepo, tokens, passwordHash, hub, log.With("module", "admin"))

	catalogHandler := catalog.NewHandler(catalogService)
	stayHandler := stay.NewHandler(stayService)
	rentalHandler := rental.NewHandler(rentalService)
	newsletterHandler := newsletter.NewHandler(newsletterService)
	adminHandler := admin.NewHandler(adminService)
	feedHandler := realtime.NewHandler(hub, adminService, cfg.CORSOrigins)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(log), middleware.CORS(cfg.CORSOrigins))

	s := &Server{Engine: r, Hub: hub, db: db}
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		catalogHandler.RegisterRoutes(v1)
		stayHandler.RegisterRoutes(v1)
		rentalHandler.RegisterRoutes(v1)
		newsletterHandler.RegisterRoutes(v1)

		adminGroup := v1.Group("/admin")
		adminHandler.RegisterPublicRoutes(adminGroup)
		// the feed authenticates with ?token= instead of a header
		adminGroup.GET("/ws", feedHandler.HandleWebSocket)

		protected := adminGroup.Group("")
		protected.Use(middleware.AdminAuth(tokens))
		adminHandler.RegisterRoutes(protected)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})

	return s, nil
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database unavailable")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}
