package models

import (
	"time"

	"github.com/google/uuid"
)

type Notice struct {
	ID      uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title   string     `gorm:"size:255;not null" json:"title"`
	Body    string     `gorm:"type:text;not null" json:"body"`
	BatchID *uuid.UUID `json:"batch_id"`

	CreatedAt time.Time `json:"created_at"`
}
