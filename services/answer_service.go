package services

import (
	"errors"

	"github.com/BozorgmehrZia/quiz-peach-backend/models"
	"github.com/BozorgmehrZia/quiz-peach-backend/repositories"

	"gorm.io/gorm"
)

type AnswerService interface {
	SubmitAnswer(userID uint, req models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error)
	GetUserAnswers(userID uint) ([]models.AnsweredQuestion, error)
}

type answerService struct {
	answerRepo   repositories.AnswerRepository
	questionRepo repositories.QuestionRepository
	userRepo     repositories.UserRepository
}

func NewAnswerService(answerRepo repositories.AnswerRepository, questionRepo repositories.QuestionRepository, userRepo repositories.UserRepository) AnswerService {
	return &answerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		userRepo:     userRepo,
	}
}

// SubmitAnswer scores a single submission. Validation and existence
// checks run before any write; the write itself is one transaction in
// which the ledger insert comes first, so a duplicate submission leaves
// every counter untouched. The HasAnswered pre-check only gives a
// friendlier fast path; the ledger's unique index is the guarantee
// under concurrent submissions for the same pair.
func (s *answerService) SubmitAnswer(userID uint, req models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error) {
	if req.Option < 1 || req.Option > 4 {
		return nil, models.ErrInvalidOption
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}

	question, err := s.questionRepo.GetByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrQuestionNotFound
		}
		return nil, err
	}

	answered, err := s.answerRepo.HasAnswered(userID, req.QuestionID)
	if err != nil {
		return nil, err
	}
	if answered {
		return nil, models.ErrQuestionAlreadyAnswered
	}

	correct := req.Option == question.CorrectOption

	if err := s.answerRepo.Submit(userID, req.QuestionID, correct); err != nil {
		return nil, err
	}

	return &models.SubmitAnswerResponse{Correct: correct}, nil
}

func (s *answerService) GetUserAnswers(userID uint) ([]models.AnsweredQuestion, error) {
	return s.answerRepo.GetByUser(userID)
}
