package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramanuj-ai/ramanuj-site/internal/dtos"
)

func validContact() dtos.ContactSubmission {
	return dtos.ContactSubmission{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Message:   "Hello",
	}
}

func validApplication() dtos.ApplicationSubmission {
	return dtos.ApplicationSubmission{
		JobID: "1",
		Name:  "Grace Hopper",
		Email: "grace@example.com",
		Phone: "555-123-4567",
	}
}

func TestValidateContactAccepts(t *testing.T) {
	assert.Empty(t, ValidateContact(validContact()))

	// Company is always optional.
	s := validContact()
	s.Company = ""
	assert.Empty(t, ValidateContact(s))
}

func TestValidateContactRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dtos.ContactSubmission)
		field  string
	}{
		{"missing first name", func(s *dtos.ContactSubmission) { s.FirstName = "" }, "firstName"},
		{"whitespace first name", func(s *dtos.ContactSubmission) { s.FirstName = "   " }, "firstName"},
		{"missing last name", func(s *dtos.ContactSubmission) { s.LastName = "" }, "lastName"},
		{"missing email", func(s *dtos.ContactSubmission) { s.Email = "" }, "email"},
		{"missing message", func(s *dtos.ContactSubmission) { s.Message = "\t\n" }, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validContact()
			tt.mutate(&s)
			errs := ValidateContact(s)
			assert.Contains(t, errs, tt.field)
			assert.Len(t, errs, 1)
		})
	}
}

func TestValidateContactEmailShape(t *testing.T) {
	bad := []string{"plain", "no-at.example.com", "a@b", "a b@example.com", "a@ex ample.com", "@example.com"}
	for _, email := range bad {
		s := validContact()
		s.Email = email
		assert.Contains(t, ValidateContact(s), "email", "email %q should be rejected", email)
	}

	good := []string{"ada@example.com", "first.last@sub.domain.io", "x+tag@ex.co"}
	for _, email := range good {
		s := validContact()
		s.Email = email
		assert.NotContains(t, ValidateContact(s), "email", "email %q should be accepted", email)
	}
}

func TestValidateApplicationAccepts(t *testing.T) {
	assert.Empty(t, ValidateApplication(validApplication()))
}

func TestValidateApplicationJobID(t *testing.T) {
	s := validApplication()
	s.JobID = ""
	errs := ValidateApplication(s)
	assert.Equal(t, "Job is required", errs["jobId"])

	s.JobID = "abc"
	errs = ValidateApplication(s)
	assert.Equal(t, "Invalid jobId", errs["jobId"])
}

func TestValidateApplicationPhoneDigits(t *testing.T) {
	pass := []string{
		"5551234",             // exactly 7 digits
		"555-123-4567",        // dashes
		"(555) 123 4567",      // parentheses and spaces
		"+44 20 7946 0958",    // leading plus
		"999999999999999",     // exactly 15 digits
	}
	for _, phone := range pass {
		s := validApplication()
		s.Phone = phone
		assert.NotContains(t, ValidateApplication(s), "phone", "phone %q should pass", phone)
	}

	fail := []string{
		"123456",              // 6 digits
		"555-123",             // formatting but too few
		"9999999999999999",    // 16 digits
	}
	for _, phone := range fail {
		s := validApplication()
		s.Phone = phone
		assert.Contains(t, ValidateApplication(s), "phone", "phone %q should fail", phone)
	}
}

func TestValidateApplicationResumeType(t *testing.T) {
	s := validApplication()
	s.ResumeType = "image/png"
	assert.Equal(t, "Only PDF files are allowed", ValidateApplication(s)["resume"])

	s.ResumeType = PDFContentType
	assert.Empty(t, ValidateApplication(s))
}

func TestPhoneDigits(t *testing.T) {
	assert.Equal(t, "5551234567", PhoneDigits("+1 (555) 123-4567")[1:])
	assert.Equal(t, "", PhoneDigits("ext."))
}

func TestMissingApplicationFields(t *testing.T) {
	missing := MissingApplicationFields(dtos.ApplicationSubmission{Phone: " "})
	assert.Equal(t, []string{"jobId", "name", "email", "phone"}, missing)

	assert.Nil(t, MissingApplicationFields(validApplication()))
}

func TestMissingContactFields(t *testing.T) {
	missing := MissingContactFields(dtos.ContactSubmission{Email: "ada@example.com"})
	assert.Equal(t, []string{"firstName", "lastName", "message"}, missing)
}
