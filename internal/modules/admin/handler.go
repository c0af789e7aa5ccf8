package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"onpauling/internal/domain"
	"onpauling/internal/pkg/response"
	"onpauling/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the login endpoint, which needs no token.
func (h *Handler) RegisterPublicRoutes(admin *gin.RouterGroup) {
	admin.POST("/auth/login", h.Login)
}

// RegisterRoutes expects admin to already carry the admin auth middleware.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/stay-bookings", h.ListStayBookings)
	admin.GET("/car-rentals", h.ListCarRentals)
	admin.GET("/stats", h.GetStats)

	admin.PATCH("/stay-bookings/:id/confirm", h.confirm(KindStay))
	admin.PATCH("/car-rentals/:id/confirm", h.confirm(KindCar))
}

// Login handles POST /api/v1/admin/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Password is required")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ListStayBookings handles GET /api/v1/admin/stay-bookings?status=&limit=&offset=
func (h *Handler) ListStayBookings(c *gin.Context) {
	f, ok := parseListFilter(c)
	if !ok {
		return
	}

	items, err := h.service.ListStayBookings(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stay bookings")
		return
	}
	response.Success(c, http.StatusOK, ListResponse[StayBookingView]{Items: items, Limit: f.Limit, Offset: f.Offset})
}

// ListCarRentals handles GET /api/v1/admin/car-rentals?status=&limit=&offset=
func (h *Handler) ListCarRentals(c *gin.Context) {
	f, ok := parseListFilter(c)
	if !ok {
		return
	}

	items, err := h.service.ListCarRentals(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rental requests")
		return
	}
	response.Success(c, http.StatusOK, ListResponse[CarRentalView]{Items: items, Limit: f.Limit, Offset: f.Offset})
}

// GetStats handles GET /api/v1/admin/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load statistics")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) confirm(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
			return
		}

		result, err := h.service.Confirm(c.Request.Context(), kind, id)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
			default:
				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to confirm")
			}
			return
		}
		response.Success(c, http.StatusOK, result)
	}
}

// parseListFilter writes a 400 and returns false on a bad query.
func parseListFilter(c *gin.Context) (repository.ListFilter, bool) {
	f := repository.ListFilter{Limit: repository.DefaultListLimit}

	if raw := c.Query("status"); raw != "" {
		st := domain.Status(raw)
		if !st.IsActive() {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status must be pending or confirmed")
			return f, false
		}
		f.Status = &st
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be a positive integer")
			return f, false
		}
		f.Limit = min(n, repository.MaxListLimit)
	}
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "offset must be zero or positive")
			return f, false
		}
		f.Offset = n
	}
	return f, true
}
