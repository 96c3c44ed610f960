package models

import "time"

// Notification categories and priorities, mirrored by the client.
const (
	NotificationTypeAlert     = "alert"
	NotificationTypeDonation  = "donation"
	NotificationTypeVolunteer = "volunteer"
	NotificationTypeGeneral   = "general"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// NotificationTTL is how long an inbox notification is kept before the
// sweep garbage-collects it.
const NotificationTTL = 7 * 24 * time.Hour

// Notification is a per-user in-app inbox record. It is distinct from the
// outbound email/SMS fan-out: this is what the client lists and marks read.
type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  string `gorm:"index:idx_notifications_user_created,priority:1" json:"userId"`
	Title   string `json:"title"`
	Message string `gorm:"type:text" json:"message"`
	Type    string `gorm:"size:20;default:general" json:"type"`
	Priority string `gorm:"size:20;default:medium" json:"priority"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`
	// AlertID is a weak back-reference to the alert that produced this
	// notification; lookup only, the alert may be deleted independently.
	AlertID   *uint     `json:"alertId,omitempty"`
	CreatedAt time.Time `gorm:"index:idx_notifications_user_created,priority:2" json:"createdAt"`
	ExpiresAt time.Time `gorm:"index" json:"expiresAt"`
}
