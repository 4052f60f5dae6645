package handler

import (
	"net/http"

	"github.com/annazecevic/band-service/dto"
	"github.com/annazecevic/band-service/service"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	svc     service.BandService
	service string
}

func NewHealthHandler(svc service.BandService, serviceName string) *HealthHandler {
	return &HealthHandler{svc: svc, service: serviceName}
}

func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
}

func (h *HealthHandler) Health(c *gin.Context) {
	bands, err := h.svc.ListBands(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "service": h.service})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Service: h.service, Bands: len(bands)})
}
