package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	Fee           float64   `gorm:"type:numeric(10,2);not null" json:"fee"`
	Schedule      string    `gorm:"size:255" json:"schedule"`
	TotalClasses  int       `gorm:"not null;default:0" json:"total_classes"`
	TotalChapters int       `gorm:"not null;default:0" json:"total_chapters"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
