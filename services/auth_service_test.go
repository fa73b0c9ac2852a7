package services

import (
	"testing"

	"github.com/BozorgmehrZia/quiz-peach-backend/models"
	"github.com/BozorgmehrZia/quiz-peach-backend/repositories"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service AuthService
}

func (s *AuthServiceTestSuite) SetupSuite() {
	s.db = newTestDB(s.T(), "auth_service")
	s.service = NewAuthService(repositories.NewUserRepository(s.db))
}

func (s *AuthServiceTestSuite) SetupTest() {
	cleanTables(s.T(), s.db)
}

func (s *AuthServiceTestSuite) register(name, email string) *models.AuthResponse {
	resp, err := s.service.Register(models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret123",
	})
	s.Require().NoError(err)
	return resp
}

func (s *AuthServiceTestSuite) TestRegisterAndLogin() {
	resp := s.register("alice", "alice@example.com")
	s.NotEmpty(resp.Token)
	s.Equal(0, resp.User.Score)

	login, err := s.service.Login(models.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	s.Require().NoError(err)
	s.Equal(resp.User.ID, login.User.ID)
}

func (s *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	s.register("alice", "alice@example.com")

	_, err := s.service.Register(models.RegisterRequest{
		Name:     "other",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	s.Require().ErrorIs(err, models.ErrEmailTaken)
}

func (s *AuthServiceTestSuite) TestRegisterDuplicateName() {
	s.register("alice", "alice@example.com")

	_, err := s.service.Register(models.RegisterRequest{
		Name:     "alice",
		Email:    "other@example.com",
		Password: "secret123",
	})
	s.Require().ErrorIs(err, models.ErrNameTaken)
}

func (s *AuthServiceTestSuite) TestLoginWrongPassword() {
	s.register("alice", "alice@example.com")

	_, err := s.service.Login(models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	s.Require().ErrorIs(err, models.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLoginUnknownEmail() {
	_, err := s.service.Login(models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	s.Require().ErrorIs(err, models.ErrInvalidCredentials)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
