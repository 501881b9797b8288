package dtos

import "time"

// ContactSubmission is the contact-form payload. One fixed field set per
// form type; the validation layer is the authority on what is required.
type ContactSubmission struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Message   string `json:"message"`
}

// ApplicationSubmission is the job-application payload as it arrives off
// the multipart form. JobID stays a string here so validation can tell
// "missing" apart from "not a number". ResumeType carries the declared
// content type of the attached file, empty when no file was attached.
type ApplicationSubmission struct {
	JobID       string `form:"jobId" json:"jobId"`
	Name        string `form:"name" json:"name"`
	Email       string `form:"email" json:"email"`
	Phone       string `form:"phone" json:"phone"`
	CoverLetter string `form:"coverLetter" json:"coverLetter"`
	ResumeType  string `form:"-" json:"-"`
}

// JobResponse is a Job with requirements expanded to a list.
type JobResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Department   string    `json:"department"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	CreatedAt    time.Time `json:"created_at"`
}

// JobCreationRequest is the admin create-job payload. Requirements arrive
// as newline-joined free text, exactly as they are stored.
type JobCreationRequest struct {
	Title        string `json:"title" binding:"required"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	Department   string `json:"department"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
}

// ApplicationRecord is an application joined with its job title for the
// admin listing.
type ApplicationRecord struct {
	ID          uint      `json:"id"`
	JobID       uint      `json:"job_id"`
	JobTitle    string    `json:"job_title"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ResumePath  *string   `json:"resume_path"`
	CoverLetter string    `json:"cover_letter"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
