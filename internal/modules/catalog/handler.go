package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"onpauling/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/catalog")
	g.GET("/suites", h.GetSuites)
	g.GET("/vehicles", h.GetVehicles)
	g.GET("/add-ons", h.GetAddOns)
	g.GET("/country-codes", h.GetCountryCodes)
}

// GetSuites handles GET /api/v1/catalog/suites
func (h *Handler) GetSuites(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"suites": h.service.ListSuites()})
}

// GetVehicles handles GET /api/v1/catalog/vehicles
func (h *Handler) GetVehicles(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"vehicles": h.service.ListVehicles()})
}

func (h *Handler) GetAddOns(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"add_ons": h.service.ListAddOns()})
}

func (h *Handler) GetCountryCodes(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"country_codes": h.service.ListCountryCodes()})
}
