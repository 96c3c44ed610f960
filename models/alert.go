package models

import "time"

// Alert statuses. New alerts always start out pending and move to
// approved or rejected through the admin review flow.
const (
	AlertStatusPending  = "pending"
	AlertStatusApproved = "approved"
	AlertStatusRejected = "rejected"
)

// NeverExpires is the sentinel stored in ExpiresBy for alerts without a TTL.
const NeverExpires int64 = -1

type Alert struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Type        string  `gorm:"size:50" json:"type"`
	Description string  `gorm:"type:text" json:"description"`
	Location    string  `json:"location"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	// CreatedAtMin is the creation time quantized to whole minutes since
	// the Unix epoch. Immutable after creation; the expiry sweep compares
	// elapsed minutes against ExpiresBy relative to this value.
	CreatedAtMin int64 `gorm:"column:created_at_min" json:"createdby"`
	// ExpiresBy is NeverExpires, or the caller-supplied minutes value
	// scaled by 60 at intake. The scaling is part of the public API
	// contract and is kept as-is.
	ExpiresBy     int64     `json:"expiresby"`
	Status        string    `gorm:"size:20;index" json:"status"`
	CreatedByUser bool      `json:"createdByUser"`
	UserID        string    `gorm:"index" json:"userId,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
