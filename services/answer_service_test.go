package services

import (
	"testing"

	"github.com/BozorgmehrZia/quiz-peach-backend/models"
	"github.com/BozorgmehrZia/quiz-peach-backend/repositories"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AnswerServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service AnswerService
}

func (s *AnswerServiceTestSuite) SetupSuite() {
	s.db = newTestDB(s.T(), "answer_service")

	answerRepo := repositories.NewAnswerRepository(s.db)
	questionRepo := repositories.NewQuestionRepository(s.db)
	userRepo := repositories.NewUserRepository(s.db)
	s.service = NewAnswerService(answerRepo, questionRepo, userRepo)
}

func (s *AnswerServiceTestSuite) SetupTest() {
	cleanTables(s.T(), s.db)
}

func (s *AnswerServiceTestSuite) reloadQuestion(id uint) *models.Question {
	var question models.Question
	s.Require().NoError(s.db.First(&question, id).Error)
	return &question
}

func (s *AnswerServiceTestSuite) reloadUser(id uint) *models.User {
	var user models.User
	s.Require().NoError(s.db.First(&user, id).Error)
	return &user
}

func (s *AnswerServiceTestSuite) TestCorrectAnswer() {
	user := createTestUser(s.T(), s.db, "alice", 0)
	creator := createTestUser(s.T(), s.db, "bob", 0)
	tag := createTestTag(s.T(), s.db, "algebra")
	question := createTestQuestion(s.T(), s.db, creator.ID, tag.ID, "q1", 2)

	resp, err := s.service.SubmitAnswer(user.ID, models.SubmitAnswerRequest{
		QuestionID: question.ID,
		Option:     2,
	})
	s.Require().NoError(err)
	s.True(resp.Correct)

	reloaded := s.reloadQuestion(question.ID)
	s.Equal(1, reloaded.AnswerCount)
	s.Equal(1, reloaded.CorrectAnswerCount)
	s.Equal(1, s.reloadUser(user.ID).Score)
}

func (s *AnswerServiceTestSuite) TestIncorrectAnswer() {
	user := createTestUser(s.T(), s.db, "alice", 0)
	creator := createTestUser(s.T(), s.db, "bob", 0)
	tag := createTestTag(s.T(), s.db, "algebra")
	question := createTestQuestion(s.T(), s.db, creator.ID, tag.ID, "q1", 2)

	resp, err := s.service.SubmitAnswer(user.ID, models.SubmitAnswerRequest{
		QuestionID: question.ID,
		Option:     3,
	})
	s.Require().NoError(err)
	s.False(resp.Correct)

	reloaded := s.reloadQuestion(question.ID)
	s.Equal(1, reloaded.AnswerCount)
	s.Equal(0, reloaded.CorrectAnswerCount)
	s.Equal(0, s.reloadUser(user.ID).Score)
}

func (s *AnswerServiceTestSuite) TestDuplicateSubmission() {
	user := createTestUser(s.T(), s.db, "alice", 0)
	creator := createTestUser(s.T(), s.db, "bob", 0)
	tag := createTestTag(s.T(), s.db, "algebra")
	question := createTestQuestion(s.T(), s.db, creator.ID, tag.ID, "q1", 2)

	_, err := s.service.SubmitAnswer(user.ID, models.SubmitAnswerRequest{
		QuestionID: question.ID,
		Option:     2,
	})
	s.Require().NoError(err)

	_, err = s.service.SubmitAnswer(user.ID, models.SubmitAnswerRequest{
		QuestionID: question.ID,
		Option:     3,
	})
	s.Require().ErrorIs(err, models.ErrQuestionAlreadyAnswered)

	// Counters unchanged after the rejected duplicate.
	reloaded := s.reloadQuestion(question.ID)
	s.Equal(1, reloaded.AnswerCount)
	s.Equal(1, reloaded.CorrectAnswerCount)
	s.Equal(1, s.reloadUser(user.ID).Score)

	var count int64
	s.Require().NoError(s.db.Model(&models.AnsweredQuestion{}).
		Where("user_id = ? AND question_id = ?", user.ID, question.ID).
		Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *AnswerServiceTestSuite) TestDuplicateBypassingPrecheck() {
	// Even when the service-level pre-check is skipped, the ledger's
	// unique index rejects the second insert and the transaction rolls
	// the counter increments back.
	user := createTestUser(s.T(), s.db, "alice", 0)
	creator := createTestUser(s.T(), s.db, "bob", 0)
	tag := createTestTag(s.T(), s.db, "algebra")
	question := createTestQuestion(s.T(), s.db, creator.ID, tag.ID, "q1", 2)

	answerRepo := repositories.NewAnswerRepository(s.db)
	s.Require().NoError(answerRepo.Submit(user.ID, question.ID, true))
	s.Require().ErrorIs(answerRepo.Submit(user.ID, question.ID, true), models.ErrQuestionAlreadyAnswered)

	reloaded := s.reloadQuestion(question.ID)
	s.Equal(1, reloaded.AnswerCount)
	s.Equal(1, reloaded.CorrectAnswerCount)
	s.Equal(1, s.reloadUser(user.ID).Score)
}

func (s *AnswerServiceTestSuite) TestInvalidOption() {
	user := createTestUser(s.T(), s.db, "alice", 0)
	creator := createTestUser(s.T(), s.db, "bob", 0)
	tag := createTestTag(s.T(), s.db, "algebra")
	question := createTestQuestion(s.T(), s.db, creator.ID, tag.ID, "q1", 2)

	_, err := s.service.SubmitAnswer(user.ID, models.SubmitAnswerRequest{
		QuestionID: question.ID,
		Option:     5,
	})
	s.Require().ErrorIs(err, models.ErrInvalidOption)

	// No mutation at all.
	reloaded := s.reloadQuestion(question.ID)
	s.Equal(0, reloaded.AnswerCount)
	s.Equal(0, s.reloadUser(user.ID).Score)
}

func (s *AnswerServiceTestSuite) TestUserNotFound() {
	creator := createTestUser(s.T(), s.db, "bob", 0)
	tag := createTestTag(s.T(), s.db, "algebra")
	question := createTestQuestion(s.T(), s.db, creator.ID, tag.ID, "q1", 2)

	_, err := s.service.SubmitAnswer(9999, models.SubmitAnswerRequest{
		QuestionID: question.ID,
		Option:     1,
	})
	s.Require().ErrorIs(err, models.ErrUserNotFound)
}

func (s *AnswerServiceTestSuite) TestQuestionNotFound() {
	user := createTestUser(s.T(), s.db, "alice", 0)

	_, err := s.service.SubmitAnswer(user.ID, models.SubmitAnswerRequest{
		QuestionID: 9999,
		Option:     1,
	})
	s.Require().ErrorIs(err, models.ErrQuestionNotFound)
}

func (s *AnswerServiceTestSuite) TestCorrectCountNeverExceedsAnswerCount() {
	creator := createTestUser(s.T(), s.db, "creator", 0)
	tag := createTestTag(s.T(), s.db, "algebra")
	question := createTestQuestion(s.T(), s.db, creator.ID, tag.ID, "q1", 2)

	users := []*models.User{
		createTestUser(s.T(), s.db, "u1", 0),
		createTestUser(s.T(), s.db, "u2", 0),
		createTestUser(s.T(), s.db, "u3", 0),
		createTestUser(s.T(), s.db, "u4", 0),
	}
	options := []int{2, 1, 2, 4}

	for i, user := range users {
		_, err := s.service.SubmitAnswer(user.ID, models.SubmitAnswerRequest{
			QuestionID: question.ID,
			Option:     options[i],
		})
		s.Require().NoError(err)

		reloaded := s.reloadQuestion(question.ID)
		s.LessOrEqual(reloaded.CorrectAnswerCount, reloaded.AnswerCount)
	}

	reloaded := s.reloadQuestion(question.ID)
	s.Equal(4, reloaded.AnswerCount)
	s.Equal(2, reloaded.CorrectAnswerCount)
}

func (s *AnswerServiceTestSuite) TestGetUserAnswers() {
	user := createTestUser(s.T(), s.db, "alice", 0)
	creator := createTestUser(s.T(), s.db, "bob", 0)
	tag := createTestTag(s.T(), s.db, "algebra")
	q1 := createTestQuestion(s.T(), s.db, creator.ID, tag.ID, "q1", 2)
	q2 := createTestQuestion(s.T(), s.db, creator.ID, tag.ID, "q2", 1)

	_, err := s.service.SubmitAnswer(user.ID, models.SubmitAnswerRequest{QuestionID: q1.ID, Option: 2})
	s.Require().NoError(err)
	_, err = s.service.SubmitAnswer(user.ID, models.SubmitAnswerRequest{QuestionID: q2.ID, Option: 3})
	s.Require().NoError(err)

	answers, err := s.service.GetUserAnswers(user.ID)
	s.Require().NoError(err)
	s.Len(answers, 2)

	statuses := map[uint]models.AnsweredStatus{}
	for _, answer := range answers {
		statuses[answer.QuestionID] = answer.AnsweredStatus
	}
	s.Equal(models.StatusCorrect, statuses[q1.ID])
	s.Equal(models.StatusIncorrect, statuses[q2.ID])
}

func TestAnswerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnswerServiceTestSuite))
}
