package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/Shamsiaa/ForestEye-App/internal/models"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// fireEventsSubject is where detected fire events are fanned out for live
// map consumers that do not want to poll /fire-events.
const fireEventsSubject = "foresteye.fire-events"

// Service publishes fire events over NATS.
type Service struct {
	conn   *nats.Conn
	logger *logrus.Logger
}

func NewService(natsURL string, logger *logrus.Logger) (*Service, error) {
	conn, err := nats.Connect(natsURL, nats.Name("foresteye-server"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.WithField("url", natsURL).Info("NATS connection established")

	return &Service{
		conn:   conn,
		logger: logger,
	}, nil
}

// PublishFireEvent fans one detection out on the fire-events subject.
func (s *Service) PublishFireEvent(event models.FireEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal fire event: %w", err)
	}
	return s.conn.Publish(fireEventsSubject, payload)
}

// Shutdown drains the connection, falling back to an immediate close.
func (s *Service) Shutdown() {
	if s.conn == nil {
		return
	}
	if err := s.conn.Drain(); err != nil {
		s.logger.WithError(err).Warn("Failed to drain NATS connection gracefully, closing immediately")
		s.conn.Close()
	}
}
