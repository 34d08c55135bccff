package routes

import (
	"net/http"

	"gearbook/handlers"
	"gearbook/utils"

	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the availability read endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	api := r.Group("/api")
	{
		api.GET("/availability", h.GetAvailability)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}
