package v1

import (
	"time"

	"github.com/google/uuid"
)

// UpdateAlertRequest carries a status transition for one alert.
// @Description Status transition request for an alert
type UpdateAlertRequest struct {
	Status string `json:"status" validate:"required"`
}

// SendAlertSMSRequest asks for the fixed help-request SMS to be sent.
// @Description Help-request SMS payload
type SendAlertSMSRequest struct {
	AlertID     string `json:"alert_id" validate:"required"`
	StationName string `json:"station_name" validate:"required"`
	ForestName  string `json:"forest_name" validate:"required"`
}

// FireStationResponse is one fire station attached to an alert.
type FireStationResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// AlertResponse is an alert with its location's fire stations attached.
type AlertResponse struct {
	AlertID          uuid.UUID             `json:"alert_id"`
	ForestName       string                `json:"forest_name"`
	ForestLocationID string                `json:"forest_location_id"`
	ImageLocation    string                `json:"image_location"`
	DetectionStatus  string                `json:"detection_status"`
	Timestamp        time.Time             `json:"timestamp"`
	FireStations     []FireStationResponse `json:"fire_stations"`
}

// UpdateAlertResponse acknowledges a status transition.
type UpdateAlertResponse struct {
	Status    string    `json:"status"`
	AlertID   uuid.UUID `json:"alert_id"`
	NewStatus string    `json:"new_status"`
}

// DeleteAlertResponse acknowledges a deletion.
type DeleteAlertResponse struct {
	Status  string    `json:"status"`
	AlertID uuid.UUID `json:"alert_id"`
	Message string    `json:"message"`
}

// SendAlertSMSResponse acknowledges a delivered SMS.
type SendAlertSMSResponse struct {
	Status     string `json:"status"`
	MessageSID string `json:"message_sid"`
	AlertID    string `json:"alert_id"`
}

// SimulationStatusResponse reports the outcome of a start/stop request.
type SimulationStatusResponse struct {
	Status string `json:"status"`
}

// CoordinatesResponse is a fire event's position on the map.
type CoordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FireEventResponse is one entry of the live fire event buffer.
type FireEventResponse struct {
	Coords     CoordinatesResponse `json:"coords"`
	ImageURL   string              `json:"image_url"`
	ForestName string              `json:"forest_name"`
	Class      string              `json:"class"`
	Confidence float64             `json:"confidence"`
	LocationID string              `json:"location_id"`
}

// HealthResponse reports process liveness and simulation state.
type HealthResponse struct {
	Status            string `json:"status"`
	SimulationRunning bool   `json:"simulation_running"`
}
