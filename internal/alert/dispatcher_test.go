package alert

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
)

type fakeNotifier struct {
	mu      sync.Mutex
	sent    []string
	failFor map[string]error
}

func (f *fakeNotifier) Notify(ctx context.Context, contact Contact, msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[contact.Email]; ok {
		return err
	}
	f.sent = append(f.sent, contact.Email)
	return nil
}

func testMessage() Message {
	return Message{
		UserID:      "user-1",
		Location:    "Home",
		Coordinates: &models.Coordinates{Latitude: 40.0, Longitude: -74.0},
		SentAt:      time.Now(),
	}
}

func TestDispatchFiltersContactsWithoutEmail(t *testing.T) {
	notifier := &fakeNotifier{}
	d := NewDispatcher(notifier)

	contacts := []Contact{
		{Name: "A", Email: "a@x.com"},
		{Name: "B", Email: ""},
		{Name: "C", Email: "b@x.com"},
	}

	report, err := d.Dispatch(context.Background(), contacts, testMessage())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total, "the email-less contact is filtered before counting")
	assert.Equal(t, 2, report.Sent)
	assert.True(t, report.Success)
	assert.ElementsMatch(t, []string{"a@x.com", "b@x.com"}, notifier.sent)
}

func TestDispatchRefusesWhenNoContactHasEmail(t *testing.T) {
	d := NewDispatcher(&fakeNotifier{})

	contacts := []Contact{
		{Name: "A", Phone: "123"},
		{Name: "B", Phone: "456", Email: "   "},
	}

	report, err := d.Dispatch(context.Background(), contacts, testMessage())
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrNoQualifyingContacts)
}

func TestDispatchRefusesEmptyContactList(t *testing.T) {
	d := NewDispatcher(&fakeNotifier{})

	_, err := d.Dispatch(context.Background(), nil, testMessage())
	assert.ErrorIs(t, err, ErrNoQualifyingContacts)
}

func TestDispatchCollectsPartialFailures(t *testing.T) {
	notifier := &fakeNotifier{
		failFor: map[string]error{"b@x.com": errors.New("mailbox unavailable")},
	}
	d := NewDispatcher(notifier)

	contacts := []Contact{
		{Name: "A", Email: "a@x.com"},
		{Name: "B", Email: "b@x.com"},
	}

	report, err := d.Dispatch(context.Background(), contacts, testMessage())
	require.NoError(t, err, "one failed delivery never fails the batch")

	assert.False(t, report.Success)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 2, report.Total)

	require.Len(t, report.Results, 2)
	assert.Equal(t, "a@x.com", report.Results[0].Email)
	assert.True(t, report.Results[0].Success)
	assert.Equal(t, "b@x.com", report.Results[1].Email)
	assert.False(t, report.Results[1].Success)
	assert.Equal(t, "mailbox unavailable", report.Results[1].Error)
}

func TestDispatchResultsKeepContactOrder(t *testing.T) {
	notifier := &fakeNotifier{}
	d := NewDispatcher(notifier)

	contacts := []Contact{
		{Name: "A", Email: "a@x.com"},
		{Name: "B", Email: "b@x.com"},
		{Name: "C", Email: "c@x.com"},
	}

	report, err := d.Dispatch(context.Background(), contacts, testMessage())
	require.NoError(t, err)

	require.Len(t, report.Results, 3)
	for i, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		assert.Equal(t, email, report.Results[i].Email)
	}
}
