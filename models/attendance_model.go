package models

import (
	"time"

	"github.com/google/uuid"
)

type Attendance struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID `gorm:"not null;uniqueIndex:idx_attendance_once" json:"student_id"`
	BatchID   uuid.UUID `gorm:"not null;uniqueIndex:idx_attendance_once" json:"batch_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_once" json:"date"`
	Status    string    `gorm:"size:10;not null;default:'present'" json:"status"`

	Student Student `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Batch   Batch   `gorm:"foreignkey:BatchID" json:"batch,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
