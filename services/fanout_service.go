package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/HarshCode115/AapdaRakshak/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EmailSender and SMSSender are the outbound notification channels. Both
// are best-effort: a failed delivery is logged and dropped, never retried
// and never surfaced to the approval request.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, numbers []string, message string) error
}

const alertEmailSubject = "🚨 Disaster Alert from AapdaRakshak"

// FanoutService broadcasts an approved alert to every registered user over
// three channels: email, SMS and the in-app inbox. The passes are
// independent; there is no transaction tying them to the alert record.
type FanoutService struct {
	db    *gorm.DB
	email EmailSender
	sms   SMSSender
	hub   *RealtimeHub
	log   *logrus.Logger
}

func NewFanoutService(db *gorm.DB, email EmailSender, sms SMSSender, hub *RealtimeHub, log *logrus.Logger) *FanoutService {
	return &FanoutService{db: db, email: email, sms: sms, hub: hub, log: log}
}

// Broadcast runs all three passes and returns the number of in-app
// notifications written. Per-channel failures are contained per pass.
func (f *FanoutService) Broadcast(ctx context.Context, alert *models.Alert) int {
	log := f.log.WithFields(logrus.Fields{
		"service":  "fanout",
		"alert_id": alert.ID,
		"type":     alert.Type,
	})

	var users []models.User
	if err := f.db.Find(&users).Error; err != nil {
		log.WithError(err).Error("Failed to load recipients, skipping broadcast")
		return 0
	}

	f.sendEmails(ctx, users, alert, log)
	f.sendSMSBatch(ctx, users, alert, log)
	count := f.writeInbox(ctx, users, alert, log)

	log.WithField("recipients", count).Info("Alert broadcast completed")
	return count
}

func (f *FanoutService) sendEmails(ctx context.Context, users []models.User, alert *models.Alert, log *logrus.Entry) {
	if f.email == nil {
		return
	}
	body := fmt.Sprintf("ALERT: %s in %s\n\nDescription: %s\n\nPlease take necessary precautions and stay safe!",
		alert.Type, alert.Location, alert.Description)
	for _, u := range users {
		if err := f.email.SendEmail(ctx, u.Email, alertEmailSubject, body); err != nil {
			log.WithError(err).WithField("email", u.Email).Warn("Alert email failed")
		}
	}
}

func (f *FanoutService) sendSMSBatch(ctx context.Context, users []models.User, alert *models.Alert, log *logrus.Entry) {
	if f.sms == nil {
		return
	}
	var numbers []string
	for _, u := range users {
		if u.MobileNo != "" {
			numbers = append(numbers, u.MobileNo)
		}
	}
	if len(numbers) == 0 {
		return
	}
	if err := f.sms.SendSMS(ctx, numbers, AlertSMSBody(alert)); err != nil {
		log.WithError(err).Warn("Alert SMS batch failed")
	}
}

func (f *FanoutService) writeInbox(ctx context.Context, users []models.User, alert *models.Alert, log *logrus.Entry) int {
	if len(users) == 0 {
		return 0
	}
	now := time.Now()
	title := fmt.Sprintf("🚨 %s ALERT", strings.ToUpper(alert.Type))
	message := fmt.Sprintf("%s in %s. Please take necessary precautions.", alert.Description, alert.Location)

	alertID := alert.ID
	notifications := make([]models.Notification, 0, len(users))
	for _, u := range users {
		notifications = append(notifications, models.Notification{
			UserID:    u.Email,
			Title:     title,
			Message:   message,
			Type:      models.NotificationTypeAlert,
			Priority:  models.PriorityHigh,
			AlertID:   &alertID,
			CreatedAt: now,
			ExpiresAt: now.Add(models.NotificationTTL),
		})
	}

	if err := f.db.WithContext(ctx).Create(&notifications).Error; err != nil {
		log.WithError(err).Error("Failed to write in-app notifications")
		return 0
	}

	if f.hub != nil {
		for i := range notifications {
			f.hub.BroadcastNotification(notifications[i].UserID, &notifications[i])
		}
	}
	return len(notifications)
}
