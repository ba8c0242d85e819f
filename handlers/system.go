package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var availableRoutes = []string{
	"GET /",
	"GET /api/health",
	"GET /api/test",
	"GET /api/users",
	"POST /api/users",
	"GET /api/users/:id",
	"PUT /api/users/:id",
	"DELETE /api/users/:id",
}

// RegisterSystemRoutes mounts the service banner, health check, debug ping
// and the catch-all 404 handler.
func RegisterSystemRoutes(r *gin.Engine, environment string, startTime time.Time) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to User Directory API",
			"version": "1.0.0",
			"status":  "Running",
			"endpoints": gin.H{
				"users": gin.H{
					"getAll":  "GET /api/users",
					"getById": "GET /api/users/:id",
					"create":  "POST /api/users",
					"update":  "PUT /api/users/:id",
					"delete":  "DELETE /api/users/:id",
				},
			},
		})
	})

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "OK",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"uptime":      time.Since(startTime).String(),
			"environment": environment,
		})
	})

	r.GET("/api/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "API is working correctly!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success":         false,
			"message":         fmt.Sprintf("Route '%s' not found", c.Request.URL.Path),
			"method":          c.Request.Method,
			"availableRoutes": availableRoutes,
		})
	})
}
