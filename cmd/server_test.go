package cmd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/annazecevic/band-service/config"
	"github.com/annazecevic/band-service/logger"
	"github.com/annazecevic/band-service/repository"
	"github.com/annazecevic/band-service/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.SetLogger(logger.NewLoggerWithWriter(logger.Config{ServiceName: "band-service"}, io.Discard))
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, limit int) http.Handler {
	t.Helper()
	repo, err := repository.NewBandRepository(repository.SeedBands())
	require.NoError(t, err)

	cfg := &config.Config{RateLimitRequests: limit, RateLimitWindow: time.Minute}
	router, limiter, err := newRouter(cfg, service.NewBandService(repo))
	require.NoError(t, err)
	t.Cleanup(limiter.Stop)
	return router
}

func assertStandardHeaders(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
	assert.NoError(t, err, "X-Request-ID")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", w.Header().Get("X-XSS-Protection"))
}

func TestRouterHeadersOnEveryStatus(t *testing.T) {
	r := newTestServer(t, 100)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/bands", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodGet, "/bands/999", http.StatusNotFound},
		{http.MethodPost, "/bands", http.StatusMethodNotAllowed},
		{http.MethodGet, "/bands/abc", http.StatusUnprocessableEntity},
		{http.MethodGet, "/bands/genre/unknown-value", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			require.Equal(t, tt.status, w.Code)
			assertStandardHeaders(t, w)
		})
	}
}

func TestRouterHeadersOnRateLimitedResponse(t *testing.T) {
	r := newTestServer(t, 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bands", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bands", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assertStandardHeaders(t, w)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRouterEchoesRequestID(t *testing.T) {
	r := newTestServer(t, 100)
	id := uuid.New().String()

	req := httptest.NewRequest(http.MethodGet, "/bands/3", nil)
	req.Header.Set("X-Request-ID", id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, w.Header().Get("X-Request-ID"))
}
