package models

import (
	"strings"
	"time"
)

// User is the admin account seeded at startup. The public site never
// creates users; there is exactly one login surface (/auth/login).
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:'admin'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Job is an open role shown on the careers page. Requirements are stored
// as newline-joined text and expanded to a list on the way out.
type Job struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Department   string    `json:"department"`
	Description  string    `gorm:"type:text" json:"description"`
	Requirements string    `gorm:"type:text" json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	// Deleting a job removes its applications with it.
	Applications []Application `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// RequirementList splits the stored requirements text on newlines,
// dropping blank entries.
func (j Job) RequirementList() []string {
	out := []string{}
	for _, line := range strings.Split(j.Requirements, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// Contact is a contact-form submission. Append-only: the public API
// exposes no update or delete for these.
type Contact struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"not null" json:"first_name"`
	LastName    string    `gorm:"not null" json:"last_name"`
	Email       string    `gorm:"not null" json:"email"`
	Company     string    `json:"company"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}

// Application is a job application. ResumePath, when set, is the relative
// public path (/uploads/<stored-name>) of a validated PDF.
type Application struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	JobID       uint      `gorm:"not null;index" json:"job_id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"not null" json:"email"`
	Phone       string    `json:"phone"`
	ResumePath  *string   `json:"resume_path"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}
