package client

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/ramanuj-ai/ramanuj-site/internal/dtos"
	"github.com/ramanuj-ai/ramanuj-site/internal/validation"
)

// Status is the submission pipeline state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// ContactForm drives one contact-form submission through validation,
// the backend call, and the best-effort side effects. A submit while a
// request is in flight is a no-op, so rapid repeated triggers send
// exactly one request. The status sticks until the next submit attempt.
type ContactForm struct {
	client   *Client
	inFlight atomic.Bool

	mu        sync.Mutex
	data      dtos.ContactSubmission
	status    Status
	fieldErrs map[string]string
}

// NewContactForm returns an idle, empty contact form.
func (c *Client) NewContactForm() *ContactForm {
	return &ContactForm{client: c, status: StatusIdle}
}

// Set replaces the form payload. Editing the form does not reset the
// last submit status.
func (f *ContactForm) Set(data dtos.ContactSubmission) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = data
}

// Data returns the current payload. After a successful submit the
// fields are cleared; after a failed one they are preserved for retry.
func (f *ContactForm) Data() dtos.ContactSubmission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

// Status returns the state of the last submit attempt.
func (f *ContactForm) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// FieldErrors returns the per-field validation messages from the last
// submit attempt.
func (f *ContactForm) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrs
}

// Submit runs the pipeline. Validation failures keep the form idle with
// the field errors populated and never reach the network.
func (f *ContactForm) Submit(ctx context.Context) {
	if !f.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer f.inFlight.Store(false)

	f.mu.Lock()
	data := f.data
	f.status = StatusIdle
	errs := validation.ValidateContact(data)
	f.fieldErrs = errs
	if len(errs) > 0 {
		f.mu.Unlock()
		return
	}
	f.status = StatusSubmitting
	f.mu.Unlock()

	res, err := f.client.postJSON(ctx, "/api/contacts", data)
	if err == nil {
		res.Body.Close()
	}
	if err != nil || res.StatusCode < 200 || res.StatusCode >= 300 {
		f.mu.Lock()
		f.status = StatusError
		f.mu.Unlock()
		return
	}

	entry := HistoryEntry{ContactSubmission: data, SubmittedAt: time.Now()}
	if f.client.History != nil {
		if err := f.client.History.Append(entry); err != nil {
			f.client.Log.Warn("history append failed", zap.Error(err))
		}
	}
	f.client.relayWebhook(ctx, entry)

	f.mu.Lock()
	f.data = dtos.ContactSubmission{}
	f.fieldErrs = nil
	f.status = StatusSuccess
	f.mu.Unlock()
}
