package handler

import (
	"fmt"
	"net/http"

	"github.com/annazecevic/band-service/dto"
	"github.com/annazecevic/band-service/logger"
	"github.com/annazecevic/band-service/middleware"
	"github.com/annazecevic/band-service/service"
	"github.com/gin-gonic/gin"
)

const ServiceName = "band-service"

// NewRouter builds the gin engine. Extra middleware runs after panic recovery
// and before the route handlers, in the order given.
func NewRouter(svc service.BandService, mw ...gin.HandlerFunc) (*gin.Engine, error) {
	if err := RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.RedirectTrailingSlash = false
	r.HandleMethodNotAllowed = true

	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error(logger.EventGeneral, "Recovered from panic", logger.Fields(
			"panic", fmt.Sprint(recovered),
			"path", c.Request.URL.Path,
			"request_id", middleware.GetRequestID(c),
		))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "Internal Server Error"})
	}))
	r.Use(mw...)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Not Found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Detail: "Method Not Allowed"})
	})

	NewHealthHandler(svc, ServiceName).RegisterRoutes(r)
	NewBandHandler(svc).RegisterRoutes(r)

	return r, nil
}
