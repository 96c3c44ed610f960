package services

import (
	"context"
	"testing"

	"github.com/HarshCode115/AapdaRakshak/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanout_AllThreePasses(t *testing.T) {
	db := newTestDB(t)
	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	fanout := NewFanoutService(db, email, sms, nil, quietLogger())

	seedUsers(t, db,
		models.User{Name: "a", Email: "a@example.com", MobileNo: "+911111111111"},
		models.User{Name: "b", Email: "b@example.com", MobileNo: "+912222222222"},
		models.User{Name: "c", Email: "c@example.com"},
	)

	alert := &models.Alert{ID: 7, Type: "flood", Location: "Assam", Description: "river rising"}
	count := fanout.Broadcast(context.Background(), alert)

	assert.Equal(t, 3, count)
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com", "c@example.com"}, email.sent)
	require.Len(t, sms.batches, 1, "SMS pass is one batched call")
	assert.Len(t, sms.batches[0], 2)

	var notifications []models.Notification
	require.NoError(t, db.Find(&notifications).Error)
	assert.Len(t, notifications, 3)
	for _, n := range notifications {
		assert.Contains(t, n.Title, "FLOOD")
		assert.Contains(t, n.Message, "Assam")
	}
}

func TestFanout_NoRecipients(t *testing.T) {
	db := newTestDB(t)
	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	fanout := NewFanoutService(db, email, sms, nil, quietLogger())

	count := fanout.Broadcast(context.Background(), &models.Alert{ID: 1, Type: "flood"})
	assert.Zero(t, count)
	assert.Empty(t, email.sent)
	assert.Empty(t, sms.batches)
}

// Channels can be absent entirely (misconfigured AWS credentials at
// boot); the in-app pass still runs.
func TestFanout_NilChannels(t *testing.T) {
	db := newTestDB(t)
	fanout := NewFanoutService(db, nil, nil, nil, quietLogger())

	seedUsers(t, db, models.User{Name: "a", Email: "a@example.com", MobileNo: "+911111111111"})

	count := fanout.Broadcast(context.Background(), &models.Alert{ID: 1, Type: "flood", Location: "Assam", Description: "x"})
	assert.Equal(t, 1, count)
}

func TestAlertSMSBody(t *testing.T) {
	body := AlertSMSBody(&models.Alert{Type: "flood", Location: "Assam", Description: "river rising"})
	assert.Contains(t, body, "flood")
	assert.Contains(t, body, "Assam")
	assert.Contains(t, body, "river rising")
}
