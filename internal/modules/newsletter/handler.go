package newsletter

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
	rg.POST("/newsletter", h.Subscribe)
}

// Subscribe handles POST /api/v1/newsletter
func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sub, created, err := h.service.Subscribe(c.Request.Context(), req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Please enter a valid email address", verr.Fields)
			return
		}
		response.Error(c, http.StatusInternalServerError, "SUBMISSION_FAILED", "We could not subscribe you right now. Please try again.")
		return
	}

	if !created {
		response.SuccessWithMessage(c, http.StatusOK, sub, "You are already subscribed.")
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, sub, "Thanks for subscribing!")
}
