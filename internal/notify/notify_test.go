package notify_test

import (
	"errors"
	"sync"
	"testing"

	"studio-backend/internal/models"
	"studio-backend/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminEmail = "boss@studio.test"

type sentEmail struct {
	To      string
	Subject string
	HTML    string
}

type captureSender struct {
	mu      sync.Mutex
	sent    []sentEmail
	failAll bool
	failN   int
}

func (s *captureSender) Send(to, subject, html string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return errors.New("smtp unavailable")
	}
	if s.failN > 0 {
		s.failN--
		return errors.New("smtp unavailable")
	}
	s.sent = append(s.sent, sentEmail{To: to, Subject: subject, HTML: html})
	return nil
}

func sampleBooking(status models.BookingStatus, hours int) *models.Booking {
	return &models.Booking{
		ID:            "bk-1",
		FullName:      "Leo Celestine",
		Email:         "leo@example.com",
		Phone:         "9600130807",
		ServiceName:   "Vocal Recording",
		Description:   "Album vocals",
		PreferredDate: "2026-09-10",
		PreferredTime: "14:00",
		Hours:         hours,
		Status:        status,
	}
}

func TestBookingCreatedSendsBoth(t *testing.T) {
	sender := &captureSender{}
	n := notify.New(sender, adminEmail)

	n.BookingCreated(sampleBooking(models.BookingPending, 3))

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "leo@example.com", sender.sent[0].To)
	assert.Equal(t, adminEmail, sender.sent[1].To)
	for _, mail := range sender.sent {
		assert.Contains(t, mail.HTML, "3 hours")
	}
	assert.Contains(t, sender.sent[0].HTML, "bk-1")
	assert.Contains(t, sender.sent[1].HTML, "9600130807")
}

func TestBookingCreatedOmitsUnsetHours(t *testing.T) {
	sender := &captureSender{}
	n := notify.New(sender, adminEmail)

	n.BookingCreated(sampleBooking(models.BookingPending, 0))

	require.Len(t, sender.sent, 2)
	for _, mail := range sender.sent {
		assert.NotContains(t, mail.HTML, "hours")
	}
}

// A failed send must not block the other one.
func TestBookingCreatedSendsAreIndependent(t *testing.T) {
	sender := &captureSender{failN: 1}
	n := notify.New(sender, adminEmail)

	n.BookingCreated(sampleBooking(models.BookingPending, 3))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, adminEmail, sender.sent[0].To)
}

func TestStatusChangeMapping(t *testing.T) {
	cases := []struct {
		status   models.BookingStatus
		contains string
	}{
		{models.BookingConfirmed, "Confirmed"},
		{models.BookingApproved, "Confirmed"},
		{models.BookingCompleted, "Thank You"},
		{models.BookingRejected, "sorry"},
		{models.BookingCancelled, "sorry"},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			sender := &captureSender{}
			n := notify.New(sender, adminEmail)

			n.BookingStatusChanged(sampleBooking(tc.status, 0))

			require.Len(t, sender.sent, 1)
			assert.Equal(t, "leo@example.com", sender.sent[0].To)
			assert.Contains(t, sender.sent[0].HTML, tc.contains)
		})
	}
}

// The apology carries the originally requested slot.
func TestRejectionKeepsRequestedSlot(t *testing.T) {
	sender := &captureSender{}
	n := notify.New(sender, adminEmail)

	n.BookingStatusChanged(sampleBooking(models.BookingRejected, 0))

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].HTML, "2026-09-10")
	assert.Contains(t, sender.sent[0].HTML, "14:00")
	assert.Contains(t, sender.sent[0].HTML, "new booking")
}

func TestUnknownStatusNotifiesNothing(t *testing.T) {
	sender := &captureSender{}
	n := notify.New(sender, adminEmail)

	n.BookingStatusChanged(sampleBooking(models.BookingPending, 0))
	n.BookingStatusChanged(sampleBooking(models.BookingStatus("archived"), 0))

	assert.Empty(t, sender.sent)
}

func TestDeliveryFailureIsSwallowed(t *testing.T) {
	sender := &captureSender{failAll: true}
	n := notify.New(sender, adminEmail)

	// Must not panic or propagate.
	n.BookingCreated(sampleBooking(models.BookingPending, 1))
	n.BookingStatusChanged(sampleBooking(models.BookingConfirmed, 1))
	assert.Empty(t, sender.sent)
}

func TestApplicationNotifications(t *testing.T) {
	sender := &captureSender{}
	n := notify.New(sender, adminEmail)

	app := &models.Application{
		ID:       "ap-1",
		FullName: "Ana",
		Email:    "ana@example.com",
		Position: "Sound Engineer",
		Status:   models.ApplicationPending,
	}

	n.ApplicationCreated(app)
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "ana@example.com", sender.sent[0].To)
	assert.Equal(t, adminEmail, sender.sent[1].To)
	assert.Contains(t, sender.sent[0].HTML, "Sound Engineer")

	sender.sent = nil
	app.Status = models.ApplicationHired
	n.ApplicationStatusChanged(app)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "ana@example.com", sender.sent[0].To)
	assert.Contains(t, sender.sent[0].HTML, "hired")
}
