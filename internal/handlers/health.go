package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/ats-api/internal/apperrors"
	"github.com/justsurfingit/ats-api/internal/database"
)

// HealthCheck is GET /. It never touches the database.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "ATS API is running successfully!"})
}

// Readiness is GET /ready: can a connection be acquired right now.
func Readiness(provider *database.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := provider.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not_ready",
				"error":  apperrors.MsgConnectionFailed,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// NotFound answers routes that do not exist.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
}
