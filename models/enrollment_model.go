package models

import (
	"time"

	"github.com/google/uuid"
)

type Enrollment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID `gorm:"not null;uniqueIndex:idx_student_batch" json:"student_id"`
	BatchID   uuid.UUID `gorm:"not null;uniqueIndex:idx_student_batch" json:"batch_id"`
	Status    string    `gorm:"size:20;not null;default:'active'" json:"status"`
	Date      time.Time `gorm:"not null" json:"date"`

	CertificateURL *string `gorm:"size:255" json:"certificate_url"`

	Student Student `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Batch   Batch   `gorm:"foreignkey:BatchID" json:"batch,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
