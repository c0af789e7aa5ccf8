package rental

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"onpauling/internal/domain"
	"onpauling/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/car-rentals")
	g.GET("/availability", h.CheckAvailability)
	g.POST("", h.Submit)
}

// CheckAvailability handles GET /api/v1/car-rentals/availability
func (h *Handler) CheckAvailability(c *gin.Context) {
	var q AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	a, err := h.service.CheckAvailability(c.Request.Context(), q)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", msgFixFields, verr.Fields)
		default:
			response.Error(c, http.StatusServiceUnavailable, "CHECK_FAILED", msgCheckFailed)
		}
		return
	}

	msg := msgAvailable
	if !a.Available {
		msg = msgUnavailable
	}
	response.SuccessWithMessage(c, http.StatusOK, a, msg)
}

// Submit handles POST /api/v1/car-rentals
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", msgFixFields, verr.Fields)
		default:
			response.Error(c, http.StatusInternalServerError, "SUBMISSION_FAILED", msgSubmissionFailed)
		}
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, SubmitResponse{
		Request: RequestRef{ID: r.ID.String(), Status: string(r.Status)},
	}, msgSubmitted)
}
