package stay

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
	rg.POST("/stay-bookings", h.Submit)
}

// Submit handles POST /api/v1/stay-bookings
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Submit(c.Request.Context(), req)
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
		Booking: BookingRef{ID: b.ID.String(), Status: string(b.Status)},
	}, msgSubmitted)
}
