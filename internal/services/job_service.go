package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ramanuj-ai/ramanuj-site/internal/dtos"
	"github.com/ramanuj-ai/ramanuj-site/internal/models"
)

// ErrJobNotFound is returned when an operation references a job id that
// does not exist in the store.
var ErrJobNotFound = errors.New("job not found")

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// List returns all open roles, newest first, with requirements expanded
// to a list.
func (s *JobService) List() ([]dtos.JobResponse, error) {
	var jobs []models.Job
	if err := s.DB.Order("created_at DESC, id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	out := make([]dtos.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, dtos.JobResponse{
			ID:           j.ID,
			Title:        j.Title,
			Location:     j.Location,
			Type:         j.Type,
			Department:   j.Department,
			Description:  j.Description,
			Requirements: j.RequirementList(),
			CreatedAt:    j.CreatedAt,
		})
	}
	return out, nil
}

// Create stores a new role. Requirements arrive as newline-joined text
// and are stored as-is.
func (s *JobService) Create(req dtos.JobCreationRequest) (*models.Job, error) {
	job := &models.Job{
		Title:        req.Title,
		Location:     req.Location,
		Type:         req.Type,
		Department:   req.Department,
		Description:  req.Description,
		Requirements: req.Requirements,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes a role by id. The applications referencing it go with
// it via the ON DELETE CASCADE constraint.
func (s *JobService) Delete(id uint) error {
	res := s.DB.Delete(&models.Job{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Exists reports whether a job with the given id is in the store.
func (s *JobService) Exists(id uint) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.Job{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of stored jobs.
func (s *JobService) Count() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Job{}).Count(&count).Error
	return count, err
}
