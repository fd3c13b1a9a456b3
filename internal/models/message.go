package models

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	AuthorID  uuid.UUID `json:"authorId" gorm:"type:uuid;index;not null"` // not a foreign key, authors are looked up explicitly
	Timestamp time.Time `json:"timestamp" gorm:"column:posted_at;index;not null"`
}
