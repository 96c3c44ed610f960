package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/HarshCode115/AapdaRakshak/config"
	"github.com/HarshCode115/AapdaRakshak/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CurrentMinute is the coarse alert clock: whole minutes since the Unix
// epoch. Alert creation stamps it and the sweep compares against it.
func CurrentMinute() int64 {
	return time.Now().Unix() / 60
}

// NormalizeExpiry maps the wire expiresby value to its stored form. "NA"
// means never expires; otherwise the minutes value is scaled by 60, which
// is part of the API contract the mobile client already depends on.
func NormalizeExpiry(raw string) (int64, error) {
	if raw == "NA" {
		return models.NeverExpires, nil
	}
	minutes, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("invalid expiresby value %q", raw)
	}
	return minutes * 60, nil
}

type CreateAlertInput struct {
	Type        string
	Location    string
	Description string
	ExpiresBy   string
	// Set on the user submission path only.
	CreatedByUser bool
	UserID        string
}

type UpdateAlertInput struct {
	ID          uint
	Type        string
	Location    string
	Description string
	ExpiresBy   string
}

type AlertService struct {
	db     *gorm.DB
	geo    Geocoder
	fanout *FanoutService
	log    *logrus.Logger

	// Injectable for tests.
	nowMinute func() int64
	connected func() bool
}

func NewAlertService(db *gorm.DB, geo Geocoder, fanout *FanoutService, log *logrus.Logger) *AlertService {
	return &AlertService{
		db:        db,
		geo:       geo,
		fanout:    fanout,
		log:       log,
		nowMinute: CurrentMinute,
		connected: config.IsConnected,
	}
}

// geocode resolves the alert location, falling back to (0,0) on any
// failure. A dead geocoder never blocks an alert from being filed.
func (s *AlertService) geocode(ctx context.Context, location string) (float64, float64) {
	lat, lon, err := s.geo.Lookup(ctx, location)
	if err != nil {
		s.log.WithError(err).WithField("location", location).Warn("Geocoding failed, using default coordinates")
		return 0, 0
	}
	return lat, lon
}

func (s *AlertService) Create(ctx context.Context, in CreateAlertInput) (*models.Alert, error) {
	expiresBy, err := NormalizeExpiry(in.ExpiresBy)
	if err != nil {
		return nil, err
	}

	lat, lon := s.geocode(ctx, in.Location)

	alert := &models.Alert{
		Type:          in.Type,
		Description:   in.Description,
		Location:      in.Location,
		Latitude:      lat,
		Longitude:     lon,
		CreatedAtMin:  s.nowMinute(),
		ExpiresBy:     expiresBy,
		Status:        models.AlertStatusPending,
		CreatedByUser: in.CreatedByUser,
		UserID:        in.UserID,
	}
	if err := s.db.WithContext(ctx).Create(alert).Error; err != nil {
		return nil, fmt.Errorf("could not create alert: %w", err)
	}
	return alert, nil
}

func (s *AlertService) List(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := s.db.WithContext(ctx).Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("could not list alerts: %w", err)
	}
	return alerts, nil
}

// Update overwrites the mutable alert fields in place. The review status
// is deliberately left untouched.
func (s *AlertService) Update(ctx context.Context, in UpdateAlertInput) error {
	expiresBy, err := NormalizeExpiry(in.ExpiresBy)
	if err != nil {
		return err
	}

	var alert models.Alert
	if err := s.db.WithContext(ctx).First(&alert, in.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAlertNotFound
		}
		return fmt.Errorf("could not load alert: %w", err)
	}

	lat, lon := s.geocode(ctx, in.Location)

	updates := map[string]any{
		"type":        in.Type,
		"description": in.Description,
		"location":    in.Location,
		"latitude":    lat,
		"longitude":   lon,
		"expires_by":  expiresBy,
	}
	if err := s.db.WithContext(ctx).Model(&alert).Updates(updates).Error; err != nil {
		return fmt.Errorf("could not update alert: %w", err)
	}
	return nil
}

// Delete removes the alert regardless of its status. Deleting an id that
// does not exist is a no-op, matching the public API.
func (s *AlertService) Delete(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.Alert{}, id).Error; err != nil {
		return fmt.Errorf("could not delete alert: %w", err)
	}
	return nil
}

// Resolve is the only path that moves an alert out of pending. The status
// change is persisted before the fan-out runs, so a slow or failing
// notification channel never rolls back the decision. Re-approving an
// already-approved alert repeats the broadcast.
func (s *AlertService) Resolve(ctx context.Context, id uint, decision string) (string, error) {
	log := s.log.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "Resolve",
		"alert_id": id,
	})

	var alert models.Alert
	if err := s.db.WithContext(ctx).First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrAlertNotFound
		}
		return "", fmt.Errorf("could not load alert: %w", err)
	}

	status := models.AlertStatusRejected
	if decision == "success" {
		status = models.AlertStatusApproved
	}

	updates := map[string]any{
		"status":     status,
		"updated_at": time.Now(),
	}
	if err := s.db.WithContext(ctx).Model(&alert).Updates(updates).Error; err != nil {
		return "", fmt.Errorf("could not update alert status: %w", err)
	}
	alert.Status = status

	if status == models.AlertStatusApproved {
		count := s.fanout.Broadcast(ctx, &alert)
		log.WithField("recipients", count).Info("Alert approved and broadcast")
		return "Alert approved and notifications sent!", nil
	}

	log.Info("Alert rejected")
	return "Alert rejected", nil
}

// SweepOnce scans the store and deletes alerts whose TTL fires on this
// exact minute. The equality comparison (not >=) is the behavior the
// original service shipped with; changing it to elapsed->delete would
// silently change when alerts disappear, so it stays. Expired inbox
// notifications are garbage-collected on the same tick.
func (s *AlertService) SweepOnce(ctx context.Context) {
	if !s.connected() {
		s.log.Debug("Skipping alert cleanup, database not connected")
		return
	}

	var alerts []models.Alert
	if err := s.db.WithContext(ctx).Find(&alerts).Error; err != nil {
		s.log.WithError(err).Warn("Alert cleanup scan failed")
		return
	}

	curr := s.nowMinute()
	for _, a := range alerts {
		if a.ExpiresBy != models.NeverExpires && curr-a.CreatedAtMin == a.ExpiresBy {
			if err := s.db.WithContext(ctx).Delete(&models.Alert{}, a.ID).Error; err != nil {
				s.log.WithError(err).WithField("alert_id", a.ID).Warn("Failed to delete expired alert")
			}
		}
	}

	if err := s.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.Notification{}).Error; err != nil {
		s.log.WithError(err).Warn("Notification cleanup failed")
	}
}

// StartSweeper runs the cleanup on a fixed cadence until ctx is
// cancelled. The process exit is the only teardown in practice.
func (s *AlertService) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.SweepOnce(ctx)
			}
		}
	}()
}
