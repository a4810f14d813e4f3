package models

import (
	"time"

	"github.com/google/uuid"
)

type Batch struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseID          uuid.UUID  `gorm:"not null" json:"course_id"`
	Name              string     `gorm:"size:255;not null" json:"name"`
	Instructor        string     `gorm:"size:255" json:"instructor"`
	Seats             int        `gorm:"not null;default:0" json:"seats"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	GenderRestriction *string    `gorm:"size:10" json:"gender_restriction"`

	Course Course `gorm:"foreignkey:CourseID" json:"course,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
