package models

import "time"

// Fund tracks money raised for a relief cause. CurrentAmount only grows,
// and only through verified payment captures.
type Fund struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `json:"name"`
	Description   string  `gorm:"type:text" json:"description"`
	TargetAmount  float64 `json:"targetamount"`
	CurrentAmount float64 `json:"currentamount"`
	CreatedAt     time.Time `json:"createdAt"`
}
