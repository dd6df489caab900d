package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/Shamsiaa/ForestEye-App/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=alert.go -destination=mocks/mock_alert.go -package=mocks

// AlertRepository defines the storage contract the alert service relies on.
type AlertRepository interface {
	ListActiveAlerts(ctx context.Context, forestID string) ([]*models.Alert, error)
	UpdateAlertStatus(ctx context.Context, id uuid.UUID, status string) error
	DeleteAlert(ctx context.Context, id uuid.UUID) error
	GetFireStations(ctx context.Context, locationID string) ([]models.FireStation, error)
	GetStationsFromCache(ctx context.Context, locationID string) ([]models.FireStation, error)
	SetStationsCache(ctx context.Context, locationID string, stations []models.FireStation) error
}

// SMSNotifier sends one templated message and returns the provider message id.
type SMSNotifier interface {
	Send(ctx context.Context, body string) (string, error)
}

// AlertService defines the business operations over alerts.
type AlertService interface {
	ListAlerts(ctx context.Context, forestID, stationID string) ([]*models.Alert, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	DeleteAlert(ctx context.Context, id uuid.UUID) error
	GetFireStations(ctx context.Context, locationID, stationID string) []models.FireStation
	SendAlertSMS(ctx context.Context, alertID, stationName, forestName string) (string, error)
}

type alertService struct {
	repo   AlertRepository
	sms    SMSNotifier
	logger *logrus.Logger
}

// NewAlertService builds the alert service. sms may be nil when the messaging
// client could not be initialized; SendAlertSMS then fails with ErrSMSUnavailable.
func NewAlertService(repo AlertRepository, sms SMSNotifier, logger *logrus.Logger) AlertService {
	return &alertService{
		repo:   repo,
		sms:    sms,
		logger: logger,
	}
}

// ListAlerts returns active alerts with their location's fire stations
// attached, newest first. With a station filter, alerts whose attached
// station list ends up empty are dropped.
func (s *alertService) ListAlerts(ctx context.Context, forestID, stationID string) ([]*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "ListAlerts",
		"forest_id":  forestID,
		"station_id": stationID,
	})
	log.Info("Fetching active alerts")

	alerts, err := s.repo.ListActiveAlerts(ctx, forestID)
	if err != nil {
		log.WithError(err).Error("Failed to list active alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}

	filtered := make([]*models.Alert, 0, len(alerts))
	for _, alert := range alerts {
		alert.FireStations = s.GetFireStations(ctx, alert.ForestLocationID, stationID)
		if stationID != "" && len(alert.FireStations) == 0 {
			continue
		}
		filtered = append(filtered, alert)
	}

	// Sorting happens after station filtering, not at query level.
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	log.WithField("count", len(filtered)).Info("Alerts listed successfully")
	return filtered, nil
}

// UpdateStatus transitions an alert to a new lifecycle status.
func (s *alertService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "UpdateStatus",
		"alert_id":   id,
		"new_status": status,
	})

	if !models.ValidAlertStatus(status) {
		log.Warn("Invalid status provided")
		return ErrInvalidStatus
	}

	log.Info("Updating alert status")
	if err := s.repo.UpdateAlertStatus(ctx, id, status); err != nil {
		log.WithError(err).Warn("Failed to update alert status in repository")
		return err
	}

	log.Info("Alert status updated successfully")
	return nil
}

// DeleteAlert removes an alert from the store.
func (s *alertService) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "DeleteAlert",
		"alert_id": id,
	})
	log.Info("Deleting alert")

	if err := s.repo.DeleteAlert(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete alert in repository")
		return err
	}

	log.Info("Alert deleted successfully")
	return nil
}

// GetFireStations returns a location's fire stations, narrowed to one station
// when stationID is given. Any retrieval failure degrades to an empty list;
// the error is logged, never surfaced to the caller.
func (s *alertService) GetFireStations(ctx context.Context, locationID, stationID string) []models.FireStation {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "alert",
		"method":      "GetFireStations",
		"location_id": locationID,
	})

	stations, err := s.locationStations(ctx, locationID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch fire stations, degrading to empty list")
		return []models.FireStation{}
	}

	if stationID == "" {
		return stations
	}
	for _, station := range stations {
		if station.ID == stationID {
			return []models.FireStation{station}
		}
	}
	return []models.FireStation{}
}

// locationStations fetches the full station list for a location, cache first.
func (s *alertService) locationStations(ctx context.Context, locationID string) ([]models.FireStation, error) {
	cached, err := s.repo.GetStationsFromCache(ctx, locationID)
	if err != nil {
		s.logger.WithError(err).WithField("location_id", locationID).
			Debug("Fire station cache lookup failed, falling back to database")
	} else if cached != nil {
		return cached, nil
	}

	stations, err := s.repo.GetFireStations(ctx, locationID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetStationsCache(ctx, locationID, stations); err != nil {
		s.logger.WithError(err).WithField("location_id", locationID).
			Warn("Failed to cache fire stations")
	}
	return stations, nil
}

// SendAlertSMS delivers the fixed help-request template once, fire-and-forget.
func (s *alertService) SendAlertSMS(ctx context.Context, alertID, stationName, forestName string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "SendAlertSMS",
		"alert_id": alertID,
	})

	if s.sms == nil {
		log.Error("SMS client is not initialized")
		return "", ErrSMSUnavailable
	}

	log.Info("Sending alert SMS")
	body := fmt.Sprintf("FIRE ALERT! Assistance requested at %s in %s (Alert ID: %s)",
		stationName, forestName, alertID)

	sid, err := s.sms.Send(ctx, body)
	if err != nil {
		log.WithError(err).Error("Failed to send alert SMS")
		return "", fmt.Errorf("service: could not send alert sms: %w", err)
	}

	log.WithField("message_sid", sid).Info("Alert SMS sent successfully")
	return sid, nil
}
