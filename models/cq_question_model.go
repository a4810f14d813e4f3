package models

import (
	"time"

	"github.com/google/uuid"
)

// CqQuestion is a creative-question stimulus with exactly two
// sub-questions carrying fixed mark weights.
type CqQuestion struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BatchID  uuid.UUID `gorm:"not null" json:"batch_id"`
	Chapter  string    `gorm:"size:100;not null" json:"chapter"`
	Stimulus string    `gorm:"type:text;not null" json:"stimulus"`
	ImageURL *string   `gorm:"size:255" json:"image_url"`

	SubQuestionA string `gorm:"type:text;not null" json:"sub_question_a"`
	MarksA       int    `gorm:"not null" json:"marks_a"`
	SubQuestionB string `gorm:"type:text;not null" json:"sub_question_b"`
	MarksB       int    `gorm:"not null" json:"marks_b"`

	Batch Batch `gorm:"foreignkey:BatchID" json:"batch,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
