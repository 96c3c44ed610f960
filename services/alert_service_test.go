package services

import (
	"context"
	"errors"
	"testing"

	"github.com/HarshCode115/AapdaRakshak/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type alertFixture struct {
	svc   *AlertService
	db    *gorm.DB
	geo   *fakeGeocoder
	email *fakeEmailSender
	sms   *fakeSMSSender
}

func newAlertFixture(t *testing.T) *alertFixture {
	db := newTestDB(t)
	log := quietLogger()
	geo := &fakeGeocoder{lat: 26.2006, lon: 92.9376}
	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	fanout := NewFanoutService(db, email, sms, nil, log)

	svc := NewAlertService(db, geo, fanout, log)
	svc.connected = func() bool { return true }

	return &alertFixture{svc: svc, db: db, geo: geo, email: email, sms: sms}
}

func TestCreateAlert_StoredPendingWithCoordinates(t *testing.T) {
	fx := newAlertFixture(t)

	alert, err := fx.svc.Create(context.Background(), CreateAlertInput{
		Type:        "flood",
		Location:    "Test City",
		Description: "x",
		ExpiresBy:   "NA",
	})
	require.NoError(t, err)

	assert.Equal(t, models.AlertStatusPending, alert.Status)
	assert.Equal(t, models.NeverExpires, alert.ExpiresBy)
	assert.Equal(t, 26.2006, alert.Latitude)
	assert.Equal(t, 92.9376, alert.Longitude)

	var stored models.Alert
	require.NoError(t, fx.db.First(&stored, alert.ID).Error)
	assert.Equal(t, models.AlertStatusPending, stored.Status)
	assert.Equal(t, models.NeverExpires, stored.ExpiresBy)
}

func TestCreateAlert_GeocodeFailureDefaultsToZero(t *testing.T) {
	fx := newAlertFixture(t)
	fx.geo.err = errors.New("geocoder unreachable")

	alert, err := fx.svc.Create(context.Background(), CreateAlertInput{
		Type:        "flood",
		Location:    "Nowhere",
		Description: "x",
		ExpiresBy:   "NA",
	})
	require.NoError(t, err, "geocode failure must not abort creation")
	assert.Zero(t, alert.Latitude)
	assert.Zero(t, alert.Longitude)
	assert.Equal(t, models.AlertStatusPending, alert.Status)
}

func TestCreateAlert_ExpiryScaling(t *testing.T) {
	fx := newAlertFixture(t)

	alert, err := fx.svc.Create(context.Background(), CreateAlertInput{
		Type:        "cyclone",
		Location:    "Chennai",
		Description: "incoming storm",
		ExpiresBy:   "2",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(120), alert.ExpiresBy)
}

func TestNormalizeExpiry(t *testing.T) {
	v, err := NormalizeExpiry("NA")
	require.NoError(t, err)
	assert.Equal(t, models.NeverExpires, v)

	v, err = NormalizeExpiry("30")
	require.NoError(t, err)
	assert.Equal(t, int64(1800), v)

	_, err = NormalizeExpiry("soon")
	assert.Error(t, err)

	_, err = NormalizeExpiry("-5")
	assert.Error(t, err)
}

func TestUpdateAlert_KeepsStatus(t *testing.T) {
	fx := newAlertFixture(t)

	alert, err := fx.svc.Create(context.Background(), CreateAlertInput{
		Type: "flood", Location: "Assam", Description: "x", ExpiresBy: "NA",
	})
	require.NoError(t, err)

	_, err = fx.svc.Resolve(context.Background(), alert.ID, "success")
	require.NoError(t, err)

	fx.geo.lat, fx.geo.lon = 19.7515, 75.7139
	err = fx.svc.Update(context.Background(), UpdateAlertInput{
		ID: alert.ID, Type: "drought", Location: "Maharashtra", Description: "y", ExpiresBy: "10",
	})
	require.NoError(t, err)

	var stored models.Alert
	require.NoError(t, fx.db.First(&stored, alert.ID).Error)
	assert.Equal(t, "drought", stored.Type)
	assert.Equal(t, 19.7515, stored.Latitude)
	assert.Equal(t, int64(600), stored.ExpiresBy)
	assert.Equal(t, models.AlertStatusApproved, stored.Status, "update must not reset review status")
}

func TestUpdateAlert_NotFound(t *testing.T) {
	fx := newAlertFixture(t)
	err := fx.svc.Update(context.Background(), UpdateAlertInput{
		ID: 999, Type: "flood", Location: "Assam", Description: "x", ExpiresBy: "NA",
	})
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestDeleteAlert_Unconditional(t *testing.T) {
	fx := newAlertFixture(t)

	alert, err := fx.svc.Create(context.Background(), CreateAlertInput{
		Type: "flood", Location: "Assam", Description: "x", ExpiresBy: "NA",
	})
	require.NoError(t, err)

	require.NoError(t, fx.svc.Delete(context.Background(), alert.ID))
	var count int64
	fx.db.Model(&models.Alert{}).Count(&count)
	assert.Zero(t, count)

	// deleting a missing id is still a success
	require.NoError(t, fx.svc.Delete(context.Background(), 12345))
}

func TestResolve_ApproveBroadcastsToAllChannels(t *testing.T) {
	fx := newAlertFixture(t)
	seedUsers(t, fx.db,
		models.User{Name: "a", Email: "a@example.com", MobileNo: "+911111111111"},
		models.User{Name: "b", Email: "b@example.com", MobileNo: "+912222222222"},
		models.User{Name: "c", Email: "c@example.com"},
	)

	alert, err := fx.svc.Create(context.Background(), CreateAlertInput{
		Type: "flood", Location: "Assam", Description: "river rising", ExpiresBy: "NA",
	})
	require.NoError(t, err)

	msg, err := fx.svc.Resolve(context.Background(), alert.ID, "success")
	require.NoError(t, err)
	assert.Equal(t, "Alert approved and notifications sent!", msg)

	var stored models.Alert
	require.NoError(t, fx.db.First(&stored, alert.ID).Error)
	assert.Equal(t, models.AlertStatusApproved, stored.Status)

	// 3 emails, one SMS batch carrying both numbers, 3 inbox records
	assert.Len(t, fx.email.sent, 3)
	require.Len(t, fx.sms.batches, 1)
	assert.ElementsMatch(t, []string{"+911111111111", "+912222222222"}, fx.sms.batches[0])

	var notifications []models.Notification
	require.NoError(t, fx.db.Find(&notifications).Error)
	require.Len(t, notifications, 3)
	for _, n := range notifications {
		assert.Equal(t, models.NotificationTypeAlert, n.Type)
		assert.Equal(t, models.PriorityHigh, n.Priority)
		require.NotNil(t, n.AlertID)
		assert.Equal(t, alert.ID, *n.AlertID)
		assert.False(t, n.IsRead)
	}
}

func TestResolve_RejectProducesNoNotifications(t *testing.T) {
	fx := newAlertFixture(t)
	seedUsers(t, fx.db, models.User{Name: "a", Email: "a@example.com"})

	alert, err := fx.svc.Create(context.Background(), CreateAlertInput{
		Type: "flood", Location: "Assam", Description: "x", ExpiresBy: "NA",
	})
	require.NoError(t, err)

	msg, err := fx.svc.Resolve(context.Background(), alert.ID, "reject")
	require.NoError(t, err)
	assert.Equal(t, "Alert rejected", msg)

	var stored models.Alert
	require.NoError(t, fx.db.First(&stored, alert.ID).Error)
	assert.Equal(t, models.AlertStatusRejected, stored.Status)

	assert.Empty(t, fx.email.sent)
	assert.Empty(t, fx.sms.batches)
	var count int64
	fx.db.Model(&models.Notification{}).Count(&count)
	assert.Zero(t, count)
}

func TestResolve_NotFound(t *testing.T) {
	fx := newAlertFixture(t)
	_, err := fx.svc.Resolve(context.Background(), 42, "success")
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

// Re-approving an approved alert keeps it approved and repeats the
// broadcast; nothing deduplicates the second fan-out.
func TestResolve_ReapproveRepeatsFanout(t *testing.T) {
	fx := newAlertFixture(t)
	seedUsers(t, fx.db, models.User{Name: "a", Email: "a@example.com"})

	alert, err := fx.svc.Create(context.Background(), CreateAlertInput{
		Type: "flood", Location: "Assam", Description: "x", ExpiresBy: "NA",
	})
	require.NoError(t, err)

	_, err = fx.svc.Resolve(context.Background(), alert.ID, "success")
	require.NoError(t, err)
	_, err = fx.svc.Resolve(context.Background(), alert.ID, "success")
	require.NoError(t, err)

	var stored models.Alert
	require.NoError(t, fx.db.First(&stored, alert.ID).Error)
	assert.Equal(t, models.AlertStatusApproved, stored.Status)

	assert.Len(t, fx.email.sent, 2)
	var count int64
	fx.db.Model(&models.Notification{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestResolve_ChannelFailureDoesNotAbortApproval(t *testing.T) {
	fx := newAlertFixture(t)
	fx.email.fail = true
	fx.sms.fail = true
	seedUsers(t, fx.db, models.User{Name: "a", Email: "a@example.com", MobileNo: "+911111111111"})

	alert, err := fx.svc.Create(context.Background(), CreateAlertInput{
		Type: "flood", Location: "Assam", Description: "x", ExpiresBy: "NA",
	})
	require.NoError(t, err)

	_, err = fx.svc.Resolve(context.Background(), alert.ID, "success")
	require.NoError(t, err, "dead channels must not fail the approval")

	var stored models.Alert
	require.NoError(t, fx.db.First(&stored, alert.ID).Error)
	assert.Equal(t, models.AlertStatusApproved, stored.Status)

	// in-app pass still runs
	var count int64
	fx.db.Model(&models.Notification{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
