package services

import (
	"context"
	"fmt"
	"time"

	"github.com/HarshCode115/AapdaRakshak/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NotificationService is the per-user inbox: paginated listing with
// unread counts plus the read-state mutations.
type NotificationService struct {
	db  *gorm.DB
	hub *RealtimeHub
	log *logrus.Logger
}

func NewNotificationService(db *gorm.DB, hub *RealtimeHub, log *logrus.Logger) *NotificationService {
	return &NotificationService{db: db, hub: hub, log: log}
}

type NotificationPage struct {
	Notifications []models.Notification `json:"notifications"`
	CurrentPage   int                   `json:"currentPage"`
	TotalPages    int64                 `json:"totalPages"`
	TotalCount    int64                 `json:"totalCount"`
	UnreadCount   int64                 `json:"unreadCount"`
}

func (s *NotificationService) List(ctx context.Context, userID string, page, limit int, unreadOnly bool) (*NotificationPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := s.db.WithContext(ctx).Model(&models.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, fmt.Errorf("could not count notifications: %w", err)
	}

	var unreadCount int64
	if err := s.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unreadCount).Error; err != nil {
		return nil, fmt.Errorf("could not count unread notifications: %w", err)
	}

	var notifications []models.Notification
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("could not list notifications: %w", err)
	}

	totalPages := (totalCount + int64(limit) - 1) / int64(limit)

	return &NotificationPage{
		Notifications: notifications,
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalCount:    totalCount,
		UnreadCount:   unreadCount,
	}, nil
}

// MarkRead flips a single notification to read. Marking one that is
// already read, or one that no longer exists, is a no-op success.
func (s *NotificationService) MarkRead(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error; err != nil {
		return fmt.Errorf("could not mark notification read: %w", err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		return fmt.Errorf("could not mark notifications read: %w", err)
	}
	return nil
}

// Create writes a single inbox notification for internal callers (the
// donation and volunteer flows) and pushes it to connected clients.
func (s *NotificationService) Create(ctx context.Context, userID, title, message, typ, priority string, alertID *uint) (*models.Notification, error) {
	now := time.Now()
	n := &models.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		Priority:  priority,
		AlertID:   alertID,
		CreatedAt: now,
		ExpiresAt: now.Add(models.NotificationTTL),
	}
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, fmt.Errorf("could not create notification: %w", err)
	}
	if s.hub != nil {
		s.hub.BroadcastNotification(userID, n)
	}
	return n, nil
}
