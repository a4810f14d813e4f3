package models

import (
	"time"

	"github.com/google/uuid"
)

type ChapterSchedule struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BatchID  uuid.UUID `gorm:"not null" json:"batch_id"`
	Chapter  string    `gorm:"size:100;not null" json:"chapter"`
	Topic    string    `gorm:"size:255" json:"topic"`
	ClassAt  time.Time `gorm:"not null" json:"class_at"`
	Duration int       `gorm:"not null;default:60" json:"duration_minutes"`

	Batch Batch `gorm:"foreignkey:BatchID" json:"batch,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
