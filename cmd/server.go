package cmd

import (
	"github.com/annazecevic/band-service/config"
	"github.com/annazecevic/band-service/handler"
	"github.com/annazecevic/band-service/middleware"
	"github.com/annazecevic/band-service/service"
	"github.com/gin-gonic/gin"
)

// newRouter assembles the production middleware stack. The caller owns the
// returned limiter and must Stop it.
func newRouter(cfg *config.Config, svc service.BandService) (*gin.Engine, *middleware.RateLimiter, error) {
	limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	router, err := handler.NewRouter(svc,
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.SecurityHeaders(),
		limiter.Middleware(),
	)
	if err != nil {
		limiter.Stop()
		return nil, nil, err
	}
	return router, limiter, nil
}
