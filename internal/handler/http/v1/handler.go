package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Shamsiaa/ForestEye-App/internal/models"
	"github.com/Shamsiaa/ForestEye-App/internal/service"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_handler.go -package=mocks

// SimulationController is the slice of the simulation engine the HTTP surface drives.
type SimulationController interface {
	Start() bool
	Stop()
	Running() bool
	Events() []models.FireEvent
}

type Handler struct {
	alertService service.AlertService
	simulation   SimulationController
	logger       *logrus.Logger
	validate     *validator.Validate
}

func NewHandler(alertService service.AlertService, simulation SimulationController, logger *logrus.Logger) *Handler {
	return &Handler{
		alertService: alertService,
		simulation:   simulation,
		logger:       logger,
		validate:     validator.New(),
	}
}

// @Summary List active alerts
// @Description Get active alerts with associated fire stations, newest first, optionally filtered by forest and station.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param forest_id query string false "Filter alerts by forest location ID"
// @Param station_id query string false "Filter attached fire stations by station ID"
// @Success 200 {array} AlertResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	forestID := c.Query("forest_id")
	stationID := c.Query("station_id")

	alerts, err := h.alertService.ListAlerts(c.Request.Context(), forestID, stationID)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Update alert status
// @Description Transition an alert to active, help_requested or dismissed.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Param alert body UpdateAlertRequest true "Status transition request"
// @Success 200 {object} UpdateAlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID or status value"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id} [patch]
func (h *Handler) updateAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "updateAlert").WithField("id", id)

	var input UpdateAlertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.alertService.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlertNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		default:
			log.WithError(err).Error("Failed to update alert in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, UpdateAlertResponse{
		Status:    "success",
		AlertID:   id,
		NewStatus: input.Status,
	})
}

// @Summary Delete an alert
// @Description Remove an alert from the store.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} DeleteAlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id} [delete]
func (h *Handler) deleteAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "deleteAlert").WithField("id", id)

	if err := h.alertService.DeleteAlert(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
			return
		}
		log.WithError(err).Error("Failed to delete alert in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, DeleteAlertResponse{
		Status:  "success",
		AlertID: id,
		Message: "Alert deleted successfully",
	})
}

// @Summary Send help-request SMS
// @Description Send the fixed-template fire alert SMS for an alert via the messaging provider.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param request body SendAlertSMSRequest true "SMS request"
// @Success 200 {object} SendAlertSMSResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Messaging client unavailable or send failed"
// @Router /alerts/send-alert-sms [post]
func (h *Handler) sendAlertSMS(c *gin.Context) {
	log := h.logger.WithField("method", "sendAlertSMS")

	var input SendAlertSMSRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sid, err := h.alertService.SendAlertSMS(c.Request.Context(), input.AlertID, input.StationName, input.ForestName)
	if err != nil {
		log.WithError(err).Error("Failed to send alert SMS")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SendAlertSMSResponse{
		Status:     "success",
		MessageSID: sid,
		AlertID:    input.AlertID,
	})
}

// @Summary Start the fire simulation
// @Description Begin a detection sweep on a background worker. A no-op when one is already running.
// @Tags Simulation
// @Produce json
// @Success 200 {object} SimulationStatusResponse
// @Router /start-simulation [post]
func (h *Handler) startSimulation(c *gin.Context) {
	h.logger.WithField("method", "startSimulation").Info("/start-simulation called")

	if h.simulation.Start() {
		c.JSON(http.StatusOK, SimulationStatusResponse{Status: "started"})
		return
	}
	c.JSON(http.StatusOK, SimulationStatusResponse{Status: "already running"})
}

// @Summary Stop the fire simulation
// @Description Request the current run to end; waits a bounded time for the worker.
// @Tags Simulation
// @Produce json
// @Success 200 {object} SimulationStatusResponse
// @Router /stop-simulation [post]
func (h *Handler) stopSimulation(c *gin.Context) {
	h.logger.WithField("method", "stopSimulation").Info("/stop-simulation called")

	h.simulation.Stop()
	c.JSON(http.StatusOK, SimulationStatusResponse{Status: "stopped"})
}

// @Summary Current fire events
// @Description The bounded in-memory buffer of the most recent detections in the current run.
// @Tags Simulation
// @Produce json
// @Success 200 {array} FireEventResponse
// @Router /fire-events [get]
func (h *Handler) fireEvents(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToFireEventResponses(h.simulation.Events()))
}

// @Summary Get application health status
// @Description Health of the application, including whether a simulation run is in flight.
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:            "ok",
		SimulationRunning: h.simulation.Running(),
	})
}
