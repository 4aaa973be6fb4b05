// internal/middleware/rate_limit_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiterBlocksPastBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(rate.Every(time.Minute), 2)
	r := gin.New()
	r.GET("/", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	statuses := make([]int, 3)
	for i := range statuses {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		r.ServeHTTP(w, req)
		statuses[i] = w.Code
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestRateLimiterIsPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(rate.Every(time.Minute), 1)
	r := gin.New()
	r.GET("/", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i, addr := range []string{"203.0.113.8:1", "203.0.113.9:1"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}
}
