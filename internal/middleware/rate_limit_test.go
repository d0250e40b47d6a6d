package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3)

	router := gin.New()
	router.GET("/ping", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", http.NoBody)
		req.RemoteAddr = "198.51.100.7:1234"
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d within burst", i+1)
	}

	// Fourth request exceeds the burst
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", http.NoBody)
	req.RemoteAddr = "198.51.100.7:1234"
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimiter_TracksIPsIndependently(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	router := gin.New()
	router.GET("/ping", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", http.NoBody)
	req.RemoteAddr = "198.51.100.7:1234"
	router.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	// Same IP is now exhausted
	second := httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/ping", http.NoBody)
	req.RemoteAddr = "198.51.100.7:5678"
	router.ServeHTTP(second, req)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// A different IP has its own bucket
	third := httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/ping", http.NoBody)
	req.RemoteAddr = "203.0.113.9:1234"
	router.ServeHTTP(third, req)
	assert.Equal(t, http.StatusOK, third.Code)
}
