package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ayushman2005/SocietyPro/internal/app/middleware"
	"github.com/Ayushman2005/SocietyPro/internal/error/response"
)

// HealthCheckController answers liveness probes
type HealthCheckController struct{}

// NewHealthCheckController creates a health check controller instance
func NewHealthCheckController() *HealthCheckController {
	return &HealthCheckController{}
}

// Ping is the health check endpoint
func (h *HealthCheckController) Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "healthy",
		"message": "pong",
		"cache":   middleware.CacheStats(),
	})
}
