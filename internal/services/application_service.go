package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/ramanuj-ai/ramanuj-site/internal/dtos"
	"github.com/ramanuj-ai/ramanuj-site/internal/models"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Create persists a job application. resumePath is nil when no résumé
// was attached.
func (s *ApplicationService) Create(jobID uint, sub dtos.ApplicationSubmission, resumePath *string) (*models.Application, error) {
	app := &models.Application{
		JobID:       jobID,
		Name:        strings.TrimSpace(sub.Name),
		Email:       strings.TrimSpace(sub.Email),
		Phone:       strings.TrimSpace(sub.Phone),
		ResumePath:  resumePath,
		CoverLetter: sub.CoverLetter,
	}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// List returns every application joined with its job title, newest
// first. Applications whose job was deleted are gone with the job, so
// the join never dangles in practice; LEFT JOIN keeps the listing
// robust anyway.
func (s *ApplicationService) List() ([]dtos.ApplicationRecord, error) {
	var records []dtos.ApplicationRecord
	err := s.DB.Model(&models.Application{}).
		Select("applications.*, jobs.title AS job_title").
		Joins("LEFT JOIN jobs ON jobs.id = applications.job_id").
		Order("applications.submitted_at DESC, applications.id DESC").
		Scan(&records).Error
	return records, err
}

// Count returns the number of stored applications.
func (s *ApplicationService) Count() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Application{}).Count(&count).Error
	return count, err
}
