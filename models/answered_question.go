package models

import (
	"time"
)

type AnsweredStatus string

const (
	StatusCorrect   AnsweredStatus = "correct"
	StatusIncorrect AnsweredStatus = "incorrect"
)

// AnsweredQuestion is the answer ledger: at most one row per
// (question, user) pair, enforced by the composite unique index.
// Rows are created once and never updated or deleted.
type AnsweredQuestion struct {
	ID             uint           `json:"id" gorm:"primarykey"`
	QuestionID     uint           `json:"question_id" gorm:"not null;uniqueIndex:idx_question_user"`
	UserID         uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_question_user"`
	AnsweredStatus AnsweredStatus `json:"answered_status" gorm:"not null"`
	CreatedAt      time.Time      `json:"created_at"`
}
