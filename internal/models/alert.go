package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert statuses an alert can carry through its lifecycle.
const (
	StatusActive        = "active"
	StatusHelpRequested = "help_requested"
	StatusDismissed     = "dismissed"
)

// ValidAlertStatus reports whether s is one of the allowed lifecycle statuses.
func ValidAlertStatus(s string) bool {
	switch s {
	case StatusActive, StatusHelpRequested, StatusDismissed:
		return true
	}
	return false
}

// Alert is a persisted record of a detected fire/smoke event at a forest location.
type Alert struct {
	ID               uuid.UUID `json:"alert_id"`
	ForestName       string    `json:"forest_name"`
	ForestLocationID string    `json:"forest_location_id"`
	ImageLocation    string    `json:"image_location"`
	DetectionStatus  string    `json:"detection_status"`
	CreatedAt        time.Time `json:"timestamp"`
	UpdatedAt        time.Time `json:"updated_at"`

	// FireStations is attached by the listing path, never persisted with the alert.
	FireStations []FireStation `json:"fire_stations,omitempty"`
}

// FireStation is read-only reference data keyed by (location id, station id).
type FireStation struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
