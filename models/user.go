package models

import (
	"gorm.io/gorm"
)

// User doubles as the notification recipient registry: every registered
// email gets alert emails and an inbox entry, every non-empty MobileNo
// gets the SMS broadcast.
type User struct {
	gorm.Model
	Name     string
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	MobileNo string
	IsAdmin  bool `gorm:"default:false"`
}
