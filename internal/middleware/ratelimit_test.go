package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(3, time.Minute)
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(1, time.Minute)
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	first := httptest.NewRecorder()
	reqA := httptest.NewRequest(http.MethodGet, "/ping", nil)
	reqA.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(first, reqA)
	assert.Equal(t, http.StatusOK, first.Code)

	blocked := httptest.NewRecorder()
	reqA2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	reqA2.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(blocked, reqA2)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)

	// A different IP still has its own budget.
	other := httptest.NewRecorder()
	reqB := httptest.NewRequest(http.MethodGet, "/ping", nil)
	reqB.RemoteAddr = "10.0.0.2:1234"
	router.ServeHTTP(other, reqB)
	assert.Equal(t, http.StatusOK, other.Code)
}
