package repositories

import (
	"errors"

	"github.com/BozorgmehrZia/quiz-peach-backend/models"

	"gorm.io/gorm"
)

type AnswerRepository interface {
	HasAnswered(userID, questionID uint) (bool, error)
	Submit(userID, questionID uint, correct bool) error
	GetByUser(userID uint) ([]models.AnsweredQuestion, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) HasAnswered(userID, questionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.AnsweredQuestion{}).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Count(&count).Error
	return count > 0, err
}

// Submit records the answer in one transaction. The ledger insert runs
// first: its (question_id, user_id) unique index is what makes a
// submission exactly-once, and a duplicate rolls the whole unit back
// before any counter is touched. Counter updates are store-level
// increments so concurrent submissions to the same question or user
// cannot lose updates.
func (r *answerRepository) Submit(userID, questionID uint, correct bool) error {
	status := models.StatusIncorrect
	if correct {
		status = models.StatusCorrect
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		record := &models.AnsweredQuestion{
			QuestionID:     questionID,
			UserID:         userID,
			AnsweredStatus: status,
		}
		if err := tx.Create(record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.ErrQuestionAlreadyAnswered
			}
			return err
		}

		questionUpdate := map[string]interface{}{
			"answer_count": gorm.Expr("answer_count + 1"),
		}
		if correct {
			questionUpdate["correct_answer_count"] = gorm.Expr("correct_answer_count + 1")
		}

		result := tx.Model(&models.Question{}).
			Where("id = ?", questionID).
			UpdateColumns(questionUpdate)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrQuestionNotFound
		}

		if correct {
			result = tx.Model(&models.User{}).
				Where("id = ?", userID).
				UpdateColumn("score", gorm.Expr("score + 1"))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return models.ErrUserNotFound
			}
		}
		return nil
	})
}

func (r *answerRepository) GetByUser(userID uint) ([]models.AnsweredQuestion, error) {
	var records []models.AnsweredQuestion
	err := r.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&records).Error
	return records, err
}
