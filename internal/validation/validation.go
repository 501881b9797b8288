// Package validation holds the pure field checks shared by the client
// SDK (pre-submit feedback) and the server handlers (the authoritative
// gate in front of persistence). Each validator returns a map of field
// name to human-readable message; a field absent from the map is valid.
package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ramanuj-ai/ramanuj-site/internal/dtos"
)

// PDFContentType is the only résumé type accepted on application intake.
const PDFContentType = "application/pdf"

// Phone numbers must carry this many digits once formatting is stripped.
const (
	MinPhoneDigits = 7
	MaxPhoneDigits = 15
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var nonDigits = regexp.MustCompile(`\D`)

// ValidateContact checks a contact-form payload. Whitespace-only values
// count as empty. Company is always optional.
func ValidateContact(s dtos.ContactSubmission) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(s.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(s.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}
	if email := strings.TrimSpace(s.Email); email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Enter a valid email"
	}
	if strings.TrimSpace(s.Message) == "" {
		errs["message"] = "Please add a brief message"
	}
	return errs
}

// ValidateApplication checks a job-application payload. A missing jobId
// and a non-numeric jobId are distinct errors.
func ValidateApplication(s dtos.ApplicationSubmission) map[string]string {
	errs := map[string]string{}
	jobID := strings.TrimSpace(s.JobID)
	if jobID == "" {
		errs["jobId"] = "Job is required"
	} else if _, err := strconv.ParseUint(jobID, 10, 64); err != nil {
		errs["jobId"] = "Invalid jobId"
	}
	if strings.TrimSpace(s.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(s.Email) == "" {
		errs["email"] = "Email is required"
	}
	if phone := strings.TrimSpace(s.Phone); phone == "" {
		errs["phone"] = "Phone is required"
	} else if n := len(PhoneDigits(phone)); n < MinPhoneDigits || n > MaxPhoneDigits {
		errs["phone"] = "Enter a valid phone number"
	}
	if s.ResumeType != "" && s.ResumeType != PDFContentType {
		errs["resume"] = "Only PDF files are allowed"
	}
	return errs
}

// PhoneDigits strips every non-digit character (spaces, dashes,
// parentheses, a leading +) from a phone string.
func PhoneDigits(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// MissingApplicationFields returns the required application fields that
// are empty after trimming, in a stable order, for the server's
// {error, missing:[...]} response body.
func MissingApplicationFields(s dtos.ApplicationSubmission) []string {
	var missing []string
	if strings.TrimSpace(s.JobID) == "" {
		missing = append(missing, "jobId")
	}
	if strings.TrimSpace(s.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(s.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(s.Phone) == "" {
		missing = append(missing, "phone")
	}
	return missing
}

// MissingContactFields returns the required contact fields that are
// empty after trimming, in a stable order.
func MissingContactFields(s dtos.ContactSubmission) []string {
	var missing []string
	if strings.TrimSpace(s.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(s.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(s.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(s.Message) == "" {
		missing = append(missing, "message")
	}
	return missing
}
