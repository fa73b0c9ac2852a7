package services

import (
	"errors"

	"github.com/BozorgmehrZia/quiz-peach-backend/models"
	"github.com/BozorgmehrZia/quiz-peach-backend/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	CreateTag(req models.CreateTagRequest) (*models.Tag, error)
	GetTags(nameFilter string) ([]models.Tag, error)
	GetTag(id uint) (*models.Tag, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) CreateTag(req models.CreateTagRequest) (*models.Tag, error) {
	_, err := s.tagRepo.GetByName(req.Name)
	if err == nil {
		return nil, models.ErrTagExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &models.Tag{Name: req.Name}
	if err := s.tagRepo.Create(tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrTagExists
		}
		return nil, err
	}

	return tag, nil
}

func (s *tagService) GetTags(nameFilter string) ([]models.Tag, error) {
	return s.tagRepo.GetAll(nameFilter)
}

func (s *tagService) GetTag(id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTagNotFound
		}
		return nil, err
	}
	return tag, nil
}
