package services

import (
	"gorm.io/gorm"

	"github.com/ramanuj-ai/ramanuj-site/internal/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// FindByEmail looks up a user by email. Returns gorm.ErrRecordNotFound
// when no such user exists.
func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
