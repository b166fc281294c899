package models

import "time"

// SessionSnapshot stores a serialized FormSnapshot for one CLI session.
type SessionSnapshot struct {
	SessionID string    `gorm:"primaryKey;size:64"`
	Data      string    `gorm:"type:text;not null"`
	ExpiresAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
