package models

import (
	"time"

	"github.com/google/uuid"
)

type Quiz struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BatchID   uuid.UUID `gorm:"not null" json:"batch_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Chapter   string    `gorm:"size:100;not null" json:"chapter"`
	FullMarks int       `gorm:"not null" json:"full_marks"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`

	Questions []QuizQuestion `gorm:"foreignkey:QuizID" json:"questions,omitempty"`
	Batch     Batch          `gorm:"foreignkey:BatchID" json:"batch,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Options and CorrectAnswers are stored as JSON-encoded arrays
// (a string array and an int index array respectively). A question
// is multi-answer iff its correct index set has more than one entry.
type QuizQuestion struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuizID         uuid.UUID `gorm:"not null" json:"quiz_id"`
	QuestionText   string    `gorm:"type:text;not null" json:"question_text"`
	Options        string    `gorm:"type:text;not null" json:"options"`
	CorrectAnswers string    `gorm:"type:text;not null" json:"-"`
}
