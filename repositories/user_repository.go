package repositories

import (
	"fmt"
	"strings"

	"github.com/BozorgmehrZia/quiz-peach-backend/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByName(name string) (*models.User, error)
	GetRanked(nameFilter string, order string) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByName(name string) (*models.User, error) {
	var user models.User
	err := r.db.Where("name = ?", name).First(&user).Error
	return &user, err
}

// GetRanked returns users ordered by score. The order must be "asc" or
// "desc"; callers validate it before it reaches the query string.
func (r *userRepository) GetRanked(nameFilter string, order string) ([]models.User, error) {
	var users []models.User

	query := r.db.Model(&models.User{})
	if nameFilter != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(nameFilter)+"%")
	}

	err := query.Order(fmt.Sprintf("score %s, id asc", order)).Find(&users).Error
	return users, err
}
