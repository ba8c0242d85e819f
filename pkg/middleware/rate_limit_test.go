package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(0.0001, 2)) // effectively no refill within the test
	r.GET("/r", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/r", nil)
		req.RemoteAddr = "10.1.2.3:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_KeysAreIndependent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(0.0001, 1))
	r.GET("/k", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	req1 := httptest.NewRequest("GET", "/k", nil)
	req1.RemoteAddr = "10.0.0.1:1111"
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, req1)
	require.Equal(t, http.StatusOK, w1.Code)

	// a different client IP has its own bucket
	req2 := httptest.NewRequest("GET", "/k", nil)
	req2.RemoteAddr = "10.0.0.2:2222"
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	require.Equal(t, http.StatusOK, w2.Code)
}
