package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/ramanuj-ai/ramanuj-site/internal/dtos"
	"github.com/ramanuj-ai/ramanuj-site/internal/models"
)

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

// Create persists a contact-form submission. Company is stored as an
// empty string when omitted.
func (s *ContactService) Create(sub dtos.ContactSubmission) (*models.Contact, error) {
	contact := &models.Contact{
		FirstName: strings.TrimSpace(sub.FirstName),
		LastName:  strings.TrimSpace(sub.LastName),
		Email:     strings.TrimSpace(sub.Email),
		Company:   sub.Company,
		Message:   sub.Message,
	}
	if err := s.DB.Create(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

// List returns every contact submission, newest first.
func (s *ContactService) List() ([]models.Contact, error) {
	var contacts []models.Contact
	err := s.DB.Order("submitted_at DESC, id DESC").Find(&contacts).Error
	return contacts, err
}

// Count returns the number of stored contacts.
func (s *ContactService) Count() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Contact{}).Count(&count).Error
	return count, err
}
