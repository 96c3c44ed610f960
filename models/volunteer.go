package models

import "time"

// Volunteer is a pending volunteer application. The unique index on
// UserID enforces the one-application-per-user rule at the storage layer.
type Volunteer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"number"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `gorm:"type:text" json:"desc"`
	Status      string `gorm:"size:20;default:pending" json:"status"`
	UserID      string `gorm:"uniqueIndex;not null" json:"userid"`
	Documents   []VolunteerDocument `gorm:"foreignKey:VolunteerID" json:"supportingDocuments"`
	CreatedAt   time.Time `json:"createdAt"`
}

type VolunteerDocument struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	VolunteerID uint   `gorm:"index" json:"-"`
	Name        string `json:"name"`
	URL         string `json:"url"`
}
