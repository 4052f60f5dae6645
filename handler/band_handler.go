package handler

import (
	"errors"
	"net/http"

	"github.com/annazecevic/band-service/domain"
	"github.com/annazecevic/band-service/dto"
	"github.com/annazecevic/band-service/logger"
	"github.com/annazecevic/band-service/middleware"
	"github.com/annazecevic/band-service/service"
	"github.com/gin-gonic/gin"
)

type BandHandler struct {
	svc service.BandService
}

func NewBandHandler(svc service.BandService) *BandHandler { return &BandHandler{svc: svc} }

func (h *BandHandler) RegisterRoutes(r *gin.Engine) {
	g := r.Group("/bands")

	g.GET("", h.ListBands)
	g.GET("/:band_id", h.GetBand)
	g.GET("/genre/:genre", h.ListBandsByGenre)
}

// GET /bands
func (h *BandHandler) ListBands(c *gin.Context) {
	out, err := h.svc.ListBands(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /bands/:band_id
func (h *BandHandler) GetBand(c *gin.Context) {
	var req dto.BandIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		pathValidationError(c, "band_id", err)
		return
	}

	band, err := h.svc.GetBandByID(c.Request.Context(), req.BandID)
	if err != nil {
		if errors.Is(err, service.ErrBandNotFound) {
			logger.Info(logger.EventNotFound, "Band not found", logger.Fields(
				"band_id", req.BandID,
				"request_id", middleware.GetRequestID(c),
			))
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Band not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, band)
}

// GET /bands/genre/:genre
func (h *BandHandler) ListBandsByGenre(c *gin.Context) {
	var req dto.GenreRequest
	if err := c.ShouldBindUri(&req); err != nil {
		pathValidationError(c, "genre", err)
		return
	}

	// the "genre" binding tag has already checked the token
	out, err := h.svc.ListBandsByGenre(c.Request.Context(), domain.Genre(req.Genre))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
