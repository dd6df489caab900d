package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Alert CRUD and SMS forwarding
	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.PATCH("/:id", h.updateAlert)
		alerts.DELETE("/:id", h.deleteAlert)
		alerts.POST("/send-alert-sms", h.sendAlertSMS)
	}

	// Simulation control and live polling
	api.POST("/start-simulation", h.startSimulation)
	api.POST("/stop-simulation", h.stopSimulation)
	api.GET("/fire-events", h.fireEvents)

	// Health-check route
	api.GET("/system/health", h.healthCheck)
}
