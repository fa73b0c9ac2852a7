package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BozorgmehrZia/quiz-peach-backend/models"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *models.Question) error
	GetByID(id uint) (*models.Question, error)
	GetList(params models.QuestionListParams, userID uint) ([]models.Question, int64, error)
	CreateRelation(questionID, relatedID uint) error
	GetRelated(questionID uint) ([]models.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// Create inserts the question and increments the tag's question counter
// in one transaction. The counter update is a store-level increment, so
// concurrent creations on the same tag cannot lose updates.
func (r *questionRepository) Create(question *models.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}

		result := tx.Model(&models.Tag{}).
			Where("id = ?", question.TagID).
			UpdateColumn("question_number", gorm.Expr("question_number + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrTagNotFound
		}
		return nil
	})
}

func (r *questionRepository) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.Preload("Tag").Preload("Creator").First(&question, id).Error
	return &question, err
}

func (r *questionRepository) GetList(params models.QuestionListParams, userID uint) ([]models.Question, int64, error) {
	var questions []models.Question
	var total int64

	query := r.db.Model(&models.Question{}).Preload("Tag")

	if params.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(params.Name)+"%")
	}
	if params.TagID > 0 {
		query = query.Where("tag_id = ?", params.TagID)
	}
	if params.Level != "" {
		query = query.Where("level = ?", params.Level)
	}

	switch params.Answered {
	case "answered":
		query = query.Where("id IN (?)", r.answeredIDs(userID))
	case "unanswered":
		query = query.Where("id NOT IN (?)", r.answeredIDs(userID))
	}

	query.Count(&total)

	query = query.Order(fmt.Sprintf("%s %s", params.SortBy, params.SortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&questions).Error

	return questions, total, err
}

func (r *questionRepository) answeredIDs(userID uint) *gorm.DB {
	return r.db.Model(&models.AnsweredQuestion{}).
		Select("question_id").
		Where("user_id = ?", userID)
}

func (r *questionRepository) CreateRelation(questionID, relatedID uint) error {
	relation := &models.RelatedQuestion{
		QuestionID: questionID,
		RelatedID:  relatedID,
	}
	if err := r.db.Create(relation).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrAlreadyRelated
		}
		return err
	}
	return nil
}

func (r *questionRepository) GetRelated(questionID uint) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Preload("Tag").
		Where("id IN (?)", r.db.Model(&models.RelatedQuestion{}).
			Select("related_id").
			Where("question_id = ?", questionID)).
		Find(&questions).Error
	return questions, err
}
