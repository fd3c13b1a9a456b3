package models

import (
	"time"

	"github.com/google/uuid"
)

// Session binds an opaque server-issued id to one user until it expires
// or is deleted by logout.
type Session struct {
	ID        string    `json:"-" gorm:"primaryKey;size:64"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
