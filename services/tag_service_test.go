package services

import (
	"testing"

	"github.com/BozorgmehrZia/quiz-peach-backend/models"
	"github.com/BozorgmehrZia/quiz-peach-backend/repositories"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type TagServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service TagService
}

func (s *TagServiceTestSuite) SetupSuite() {
	s.db = newTestDB(s.T(), "tag_service")
	s.service = NewTagService(repositories.NewTagRepository(s.db))
}

func (s *TagServiceTestSuite) SetupTest() {
	cleanTables(s.T(), s.db)
}

func (s *TagServiceTestSuite) TestCreateTag() {
	tag, err := s.service.CreateTag(models.CreateTagRequest{Name: "algebra"})
	s.Require().NoError(err)
	s.Equal("algebra", tag.Name)
	s.Equal(0, tag.QuestionNumber)
}

func (s *TagServiceTestSuite) TestCreateDuplicateTag() {
	_, err := s.service.CreateTag(models.CreateTagRequest{Name: "algebra"})
	s.Require().NoError(err)

	_, err = s.service.CreateTag(models.CreateTagRequest{Name: "algebra"})
	s.Require().ErrorIs(err, models.ErrTagExists)
}

func (s *TagServiceTestSuite) TestGetTagsWithFilter() {
	for _, name := range []string{"Algebra", "Geometry", "Linear Algebra"} {
		_, err := s.service.CreateTag(models.CreateTagRequest{Name: name})
		s.Require().NoError(err)
	}

	tags, err := s.service.GetTags("algebra")
	s.Require().NoError(err)
	s.Len(tags, 2)

	all, err := s.service.GetTags("")
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *TagServiceTestSuite) TestGetTagNotFound() {
	_, err := s.service.GetTag(9999)
	s.Require().ErrorIs(err, models.ErrTagNotFound)
}

func TestTagServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TagServiceTestSuite))
}
