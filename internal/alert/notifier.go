package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
)

// GatewayNotifier posts one JSON notification per contact to the configured
// notification gateway, which owns the actual email delivery.
type GatewayNotifier struct {
	url    string
	client *http.Client
}

// NewGatewayNotifier creates a notifier for the given gateway endpoint
func NewGatewayNotifier(url string, timeout time.Duration) *GatewayNotifier {
	return &GatewayNotifier{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type gatewayPayload struct {
	To          string              `json:"to"`
	Name        string              `json:"name"`
	Subject     string              `json:"subject"`
	Message     string              `json:"message"`
	Location    string              `json:"location,omitempty"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	SentAt      time.Time           `json:"sentAt"`
}

// Notify sends one alert notification through the gateway
func (n *GatewayNotifier) Notify(ctx context.Context, contact Contact, msg Message) error {
	body := "Emergency alert: I need help. This message was sent automatically from my location tracker."
	if msg.Location != "" {
		body = fmt.Sprintf("%s Last known location: %s.", body, msg.Location)
	}
	if msg.Coordinates != nil {
		body = fmt.Sprintf("%s Coordinates: %.6f, %.6f.", body, msg.Coordinates.Latitude, msg.Coordinates.Longitude)
	}

	payload, err := json.Marshal(gatewayPayload{
		To:          contact.Email,
		Name:        contact.Name,
		Subject:     "EMERGENCY ALERT",
		Message:     body,
		Location:    msg.Location,
		Coordinates: msg.Coordinates,
		SentAt:      msg.SentAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification gateway returned status %d", resp.StatusCode)
	}
	return nil
}
