package services

import (
	"errors"

	"github.com/BozorgmehrZia/quiz-peach-backend/models"
	"github.com/BozorgmehrZia/quiz-peach-backend/repositories"

	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(req models.CreateQuestionRequest, userID uint) (*models.Question, error)
	GetQuestion(id uint) (*models.Question, error)
	GetQuestions(params models.QuestionListParams, userID uint) ([]models.Question, int64, error)
	RelateQuestions(questionID, relatedID uint) error
	GetRelatedQuestions(questionID uint) ([]models.Question, error)
}

type questionService struct {
	questionRepo repositories.QuestionRepository
	tagRepo      repositories.TagRepository
}

func NewQuestionService(questionRepo repositories.QuestionRepository, tagRepo repositories.TagRepository) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		tagRepo:      tagRepo,
	}
}

// CreateQuestion resolves the tag by name before anything is written;
// an unknown tag fails the whole operation with no question created.
func (s *questionService) CreateQuestion(req models.CreateQuestionRequest, userID uint) (*models.Question, error) {
	tag, err := s.tagRepo.GetByName(req.TagName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTagNotFound
		}
		return nil, err
	}

	question := &models.Question{
		CreatorID:     userID,
		Name:          req.Name,
		Question:      req.Question,
		Option1:       req.Option1,
		Option2:       req.Option2,
		Option3:       req.Option3,
		Option4:       req.Option4,
		CorrectOption: req.CorrectOption,
		Level:         req.Level,
		TagID:         tag.ID,
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}

	return s.questionRepo.GetByID(question.ID)
}

func (s *questionService) GetQuestion(id uint) (*models.Question, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *questionService) GetQuestions(params models.QuestionListParams, userID uint) ([]models.Question, int64, error) {
	if params.Level != "" {
		switch models.QuestionLevel(params.Level) {
		case models.LevelEasy, models.LevelMedium, models.LevelHard:
		default:
			return nil, 0, models.ErrInvalidLevel
		}
	}
	if params.SortOrder == "" {
		params.SortOrder = "desc"
	}
	if params.SortOrder != "asc" && params.SortOrder != "desc" {
		return nil, 0, models.ErrInvalidSort
	}
	switch params.SortBy {
	case "created_at", "answer_count", "name":
	default:
		params.SortBy = "created_at"
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	return s.questionRepo.GetList(params, userID)
}

func (s *questionService) RelateQuestions(questionID, relatedID uint) error {
	if questionID == relatedID {
		return models.ErrSelfRelation
	}

	for _, id := range []uint{questionID, relatedID} {
		if _, err := s.questionRepo.GetByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrQuestionNotFound
			}
			return err
		}
	}

	return s.questionRepo.CreateRelation(questionID, relatedID)
}

func (s *questionService) GetRelatedQuestions(questionID uint) ([]models.Question, error) {
	if _, err := s.questionRepo.GetByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrQuestionNotFound
		}
		return nil, err
	}
	return s.questionRepo.GetRelated(questionID)
}
