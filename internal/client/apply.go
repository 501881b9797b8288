package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"regexp"
	"sync"
	"sync/atomic"

	"github.com/ramanuj-ai/ramanuj-site/internal/dtos"
	"github.com/ramanuj-ai/ramanuj-site/internal/validation"
)

// ResumeFile is a résumé attachment for an application submission.
type ResumeFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// ApplicationForm drives a job-application submission: validate, send
// the multipart request, and report the outcome. The same single-flight
// guard as ContactForm applies.
type ApplicationForm struct {
	client   *Client
	inFlight atomic.Bool

	mu        sync.Mutex
	data      dtos.ApplicationSubmission
	resume    *ResumeFile
	status    Status
	fieldErrs map[string]string
}

// NewApplicationForm returns an idle, empty application form.
func (c *Client) NewApplicationForm() *ApplicationForm {
	return &ApplicationForm{client: c, status: StatusIdle}
}

// Set replaces the form payload.
func (f *ApplicationForm) Set(data dtos.ApplicationSubmission) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = data
}

// Attach sets the résumé. Pass nil to clear it. The attachment is
// optional, but must be a PDF to pass validation.
func (f *ApplicationForm) Attach(resume *ResumeFile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resume = resume
}

// Data returns the current payload.
func (f *ApplicationForm) Data() dtos.ApplicationSubmission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

// Status returns the state of the last submit attempt.
func (f *ApplicationForm) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// FieldErrors returns the per-field validation messages from the last
// submit attempt.
func (f *ApplicationForm) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrs
}

// Submit runs the pipeline. On success the form is cleared, on failure
// the entered data and attachment are kept for retry.
func (f *ApplicationForm) Submit(ctx context.Context) {
	if !f.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer f.inFlight.Store(false)

	f.mu.Lock()
	data := f.data
	resume := f.resume
	if resume != nil {
		data.ResumeType = resume.ContentType
	}
	f.status = StatusIdle
	errs := validation.ValidateApplication(data)
	f.fieldErrs = errs
	if len(errs) > 0 {
		f.mu.Unlock()
		return
	}
	f.status = StatusSubmitting
	f.mu.Unlock()

	res, err := f.post(ctx, data, resume)
	if err == nil {
		res.Body.Close()
	}
	if err != nil || res.StatusCode < 200 || res.StatusCode >= 300 {
		f.mu.Lock()
		f.status = StatusError
		f.mu.Unlock()
		return
	}

	f.mu.Lock()
	f.data = dtos.ApplicationSubmission{}
	f.resume = nil
	f.fieldErrs = nil
	f.status = StatusSuccess
	f.mu.Unlock()
}

var quoteEscaper = regexp.MustCompile(`["\\]`)

func (f *ApplicationForm) post(ctx context.Context, data dtos.ApplicationSubmission, resume *ResumeFile) (*http.Response, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"jobId":       data.JobID,
		"name":        data.Name,
		"email":       data.Email,
		"phone":       data.Phone,
		"coverLetter": data.CoverLetter,
	}
	for _, key := range []string{"jobId", "name", "email", "phone", "coverLetter"} {
		if err := w.WriteField(key, fields[key]); err != nil {
			return nil, err
		}
	}
	if resume != nil {
		// Build the part by hand so the declared content type survives;
		// CreateFormFile would stamp application/octet-stream.
		h := make(textproto.MIMEHeader)
		name := quoteEscaper.ReplaceAllString(resume.Name, "_")
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename="%s"`, name))
		h.Set("Content-Type", resume.ContentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(resume.Content); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.client.BaseURL+"/api/applications", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return f.client.HTTPClient.Do(req)
}
