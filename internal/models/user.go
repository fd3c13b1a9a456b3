package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName    string     `json:"firstName" gorm:"not null"`
	LastName     string     `json:"lastName" gorm:"not null"`
	Username     string     `json:"username" gorm:"size:25;uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Membership   Membership `json:"membership" gorm:"size:16;not null;default:regular"`
	GoogleID     *string    `json:"-" gorm:"uniqueIndex"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate assigns the id in Go so the schema works on both Postgres
// and SQLite.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Membership == "" {
		u.Membership = Regular
	}
	return nil
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u User) IsMember() bool {
	return u.Membership == Member
}

// UserPatch lists the fields a stored user may have changed after signup.
type UserPatch struct {
	Membership *Membership
}
