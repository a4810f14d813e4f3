package models

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentSerial   string    `gorm:"size:20;not null;unique" json:"student_serial"`
	FullName        string    `gorm:"size:255;not null" json:"full_name"`
	Email           string    `gorm:"size:255;not null;unique" json:"email"`
	Phone           string    `gorm:"size:20;not null" json:"phone"`
	Password        string    `gorm:"not null" json:"-"`
	Gender          string    `gorm:"size:10;not null" json:"gender"`
	InstitutionCode string    `gorm:"size:20" json:"institution_code"`
	Address         *string   `gorm:"type:text" json:"address"`
	PhotoURL        *string   `gorm:"size:255" json:"photo_url"`
	Role            string    `gorm:"size:20;not null;default:'student'" json:"role"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`

	ResetPasswordToken          *string    `gorm:"size:255;unique" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
