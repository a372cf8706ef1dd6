package alert

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
)

// ErrNoQualifyingContacts is returned when no contact has an email address,
// even if the contact list itself is non-empty. The user must register an
// emailable contact before alerting.
var ErrNoQualifyingContacts = errors.New("no emergency contacts with an email address")

// Contact is the delivery target for one alert notification
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Message is the alert content shared by every delivery
type Message struct {
	UserID      string
	Location    string
	Coordinates *models.Coordinates // nil when no fix is known
	SentAt      time.Time
}

// Notifier delivers one alert notification. The transport (email gateway,
// webhook) lives behind this boundary.
type Notifier interface {
	Notify(ctx context.Context, contact Contact, msg Message) error
}

// DeliveryResult records the outcome for one contact
type DeliveryResult struct {
	Email   string `json:"email"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Report aggregates the outcomes of one alert broadcast
type Report struct {
	Success bool             `json:"success"`
	Sent    int              `json:"sent"`
	Total   int              `json:"total"`
	Results []DeliveryResult `json:"results"`
}

// Dispatcher fans an alert out to every qualifying contact
type Dispatcher struct {
	notifier Notifier
}

// NewDispatcher creates a new alert dispatcher
func NewDispatcher(n Notifier) *Dispatcher {
	return &Dispatcher{notifier: n}
}

// Dispatch filters the contact list to those with a non-empty email and
// delivers the alert to each concurrently. One failed delivery never fails
// the batch: per-contact outcomes are collected and reported together.
// Success in the report means every qualifying contact was reached.
func (d *Dispatcher) Dispatch(ctx context.Context, contacts []Contact, msg Message) (*Report, error) {
	var qualified []Contact
	for _, c := range contacts {
		if strings.TrimSpace(c.Email) != "" {
			qualified = append(qualified, c)
		}
	}
	if len(qualified) == 0 {
		return nil, ErrNoQualifyingContacts
	}

	// One goroutine per contact; each writes only its own slot of the
	// pre-sized result slice, so no locking is needed.
	results := make([]DeliveryResult, len(qualified))
	var wg sync.WaitGroup
	for i, c := range qualified {
		wg.Add(1)
		go func(i int, c Contact) {
			defer wg.Done()
			res := DeliveryResult{Email: c.Email}
			if err := d.notifier.Notify(ctx, c, msg); err != nil {
				res.Error = err.Error()
			} else {
				res.Success = true
			}
			results[i] = res
		}(i, c)
	}
	wg.Wait()

	sent := 0
	for _, r := range results {
		if r.Success {
			sent++
		}
	}

	return &Report{
		Success: sent == len(qualified),
		Sent:    sent,
		Total:   len(qualified),
		Results: results,
	}, nil
}
