package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HarshCode115/AapdaRakshak/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DocumentUploader stores a base64-encoded supporting document and
// returns its public URL. Backed by S3 in production.
type DocumentUploader func(base64Data, filenamePrefix string) (string, error)

type VolunteerDocumentInput struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

type VolunteerInput struct {
	Name        string
	Phone       string
	Type        string
	Location    string
	Description string
	UserID      string
	Documents   []VolunteerDocumentInput
}

type VolunteerService struct {
	db     *gorm.DB
	upload DocumentUploader
	inbox  *NotificationService
	log    *logrus.Logger
}

func NewVolunteerService(db *gorm.DB, upload DocumentUploader, inbox *NotificationService, log *logrus.Logger) *VolunteerService {
	return &VolunteerService{db: db, upload: upload, inbox: inbox, log: log}
}

// Apply files a volunteer application. One application per user: the
// lookup catches the common case and the unique index on user_id backs it
// up against concurrent submissions.
func (s *VolunteerService) Apply(ctx context.Context, in VolunteerInput) error {
	var existing models.Volunteer
	err := s.db.WithContext(ctx).Where("user_id = ?", in.UserID).First(&existing).Error
	if err == nil {
		return ErrAlreadyApplied
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("could not check existing application: %w", err)
	}

	volunteer := models.Volunteer{
		Name:        in.Name,
		Phone:       in.Phone,
		Type:        in.Type,
		Location:    in.Location,
		Description: in.Description,
		Status:      models.AlertStatusPending,
		UserID:      in.UserID,
	}

	for _, doc := range in.Documents {
		if doc.Data == "" {
			continue
		}
		url, err := s.upload(doc.Data, sanitizeFilename(doc.Name))
		if err != nil {
			s.log.WithError(err).WithField("document", doc.Name).Warn("Document upload failed, skipping")
			continue
		}
		volunteer.Documents = append(volunteer.Documents, models.VolunteerDocument{
			Name: doc.Name,
			URL:  url,
		})
	}

	if err := s.db.WithContext(ctx).Create(&volunteer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(strings.ToLower(err.Error()), "unique") {
			return ErrAlreadyApplied
		}
		return fmt.Errorf("could not create volunteer application: %w", err)
	}

	if s.inbox != nil {
		if _, err := s.inbox.Create(ctx, in.UserID,
			"Volunteer application received",
			"Your application is under review. We will notify you once it is processed.",
			models.NotificationTypeVolunteer, models.PriorityMedium, nil); err != nil {
			s.log.WithError(err).Warn("Failed to write volunteer confirmation notification")
		}
	}
	return nil
}

func (s *VolunteerService) List(ctx context.Context) ([]models.Volunteer, error) {
	var volunteers []models.Volunteer
	if err := s.db.WithContext(ctx).Preload("Documents").Find(&volunteers).Error; err != nil {
		return nil, fmt.Errorf("could not list volunteers: %w", err)
	}
	return volunteers, nil
}

func sanitizeFilename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		name = "document"
	}
	return name
}
