package models

import (
	"time"
)

type Tag struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	Name           string    `json:"name" gorm:"uniqueIndex;not null"`
	QuestionNumber int       `json:"question_number" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
