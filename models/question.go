package models

import (
	"time"
)

type QuestionLevel string

const (
	LevelEasy   QuestionLevel = "easy"
	LevelMedium QuestionLevel = "medium"
	LevelHard   QuestionLevel = "hard"
)

type Question struct {
	ID                 uint          `json:"id" gorm:"primarykey"`
	CreatorID          uint          `json:"creator_id" gorm:"not null"`
	Creator            User          `json:"creator" gorm:"foreignKey:CreatorID;constraint:OnDelete:RESTRICT"`
	Name               string        `json:"name" gorm:"not null"`
	Question           string        `json:"question" gorm:"type:text;not null"`
	Option1            string        `json:"option1" gorm:"not null"`
	Option2            string        `json:"option2" gorm:"not null"`
	Option3            string        `json:"option3" gorm:"not null"`
	Option4            string        `json:"option4" gorm:"not null"`
	CorrectOption      int           `json:"-" gorm:"not null"`
	Level              QuestionLevel `json:"level" gorm:"not null"`
	TagID              uint          `json:"tag_id" gorm:"not null"`
	Tag                Tag           `json:"tag" gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
	AnswerCount        int           `json:"answer_count" gorm:"not null;default:0"`
	CorrectAnswerCount int           `json:"correct_answer_count" gorm:"not null;default:0"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// RelatedQuestion is an advisory cross-link between two questions.
// The pair is unique; scoring never consults it.
type RelatedQuestion struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_question_related"`
	RelatedID  uint      `json:"related_id" gorm:"not null;uniqueIndex:idx_question_related"`
	CreatedAt  time.Time `json:"created_at"`
}
