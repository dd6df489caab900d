package notifier

import (
	"context"
	"fmt"

	"github.com/Shamsiaa/ForestEye-App/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioNotifier sends SMS through the Twilio REST API. Every send is a
// single attempt; delivery is fire-and-forget.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
	to     string
	logger *logrus.Logger
}

// NewTwilioNotifier builds the client from config. It fails when any of the
// Twilio settings are missing, leaving the caller to run without SMS.
func NewTwilioNotifier(cfg *config.Config, logger *logrus.Logger) (*TwilioNotifier, error) {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" ||
		cfg.TwilioFromNumber == "" || cfg.AlertPhoneNumber == "" {
		return nil, fmt.Errorf("missing one or more Twilio configuration environment variables")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})

	logger.Info("Twilio client initialized successfully")

	return &TwilioNotifier{
		client: client,
		from:   cfg.TwilioFromNumber,
		to:     cfg.AlertPhoneNumber,
		logger: logger,
	}, nil
}

// Send delivers one message and returns the provider message SID.
func (n *TwilioNotifier) Send(_ context.Context, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)
	params.SetFrom(n.from)
	params.SetTo(n.to)

	msg, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("failed to send sms: %w", err)
	}

	sid := ""
	if msg.Sid != nil {
		sid = *msg.Sid
	}
	n.logger.WithField("message_sid", sid).Info("SMS sent successfully")
	return sid, nil
}
