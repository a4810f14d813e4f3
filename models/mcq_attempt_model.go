package models

import (
	"time"

	"github.com/google/uuid"
)

// McqAttempt is one student's single submission for a quiz chapter.
// The composite unique index makes the one-attempt-per-chapter rule
// hold under concurrent submissions, not just in the pre-check.
type McqAttempt struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID   uuid.UUID `gorm:"not null;uniqueIndex:idx_attempt_once" json:"student_id"`
	BatchID     uuid.UUID `gorm:"not null;uniqueIndex:idx_attempt_once" json:"batch_id"`
	Chapter     string    `gorm:"size:100;not null;uniqueIndex:idx_attempt_once" json:"chapter"`
	QuizID      uuid.UUID `gorm:"not null" json:"quiz_id"`
	Score       int       `gorm:"not null" json:"score"`
	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`

	Answers []AttemptAnswer `gorm:"foreignkey:McqAttemptID" json:"answers,omitempty"`
	Student Student         `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Batch   Batch           `gorm:"foreignkey:BatchID" json:"batch,omitempty"`
	Quiz    Quiz            `gorm:"foreignkey:QuizID" json:"quiz,omitempty"`
}

// SelectedIndexes holds a JSON-encoded int array referencing the
// question's original (unshuffled) option order.
type AttemptAnswer struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	McqAttemptID    uuid.UUID `gorm:"not null" json:"mcq_attempt_id"`
	QuestionID      uuid.UUID `gorm:"not null" json:"question_id"`
	SelectedIndexes string    `gorm:"type:text;not null" json:"selected_indexes"`
	IsCorrect       bool      `gorm:"not null" json:"is_correct"`

	Question QuizQuestion `gorm:"foreignkey:QuestionID" json:"question,omitempty"`
}
