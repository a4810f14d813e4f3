package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID    uuid.UUID  `gorm:"not null" json:"student_id"`
	BatchID      uuid.UUID  `gorm:"not null" json:"batch_id"`
	EnrollmentID *uuid.UUID `gorm:"unique" json:"enrollment_id"`
	Amount       float64    `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method       string     `gorm:"size:20;not null" json:"method"`
	Status       string     `gorm:"size:20;not null;default:'paid'" json:"status"`
	ReceiptURL   *string    `gorm:"type:text" json:"receipt_url"`
	PaidAt       time.Time  `gorm:"not null" json:"paid_at"`

	Student    Student    `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Batch      Batch      `gorm:"foreignkey:BatchID" json:"batch,omitempty"`
	Enrollment Enrollment `gorm:"foreignkey:EnrollmentID" json:"enrollment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
