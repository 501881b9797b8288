package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ramanuj-ai/ramanuj-site/internal/dtos"
)

// DefaultHistoryName is the file name of the local submission history,
// the file-backed stand-in for the browser's localStorage key
// "ramanuj_contact_submissions".
const DefaultHistoryName = "ramanuj_contact_submissions.json"

// HistoryEntry is one mirrored submission with the client-observed
// timestamp.
type HistoryEntry struct {
	dtos.ContactSubmission
	SubmittedAt time.Time `json:"submittedAt"`
}

// History is an append-only local record of successful contact
// submissions. Advisory only: it is written best-effort after the
// backend has already accepted the submission, and is never read back
// by the pipeline.
type History struct {
	Path string

	mu sync.Mutex
}

// Append adds one entry to the history file, creating it (and its
// directory) on first use.
func (h *History) Append(entry HistoryEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.read()
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(h.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(h.Path, data, 0o644)
}

// Entries returns the recorded submissions, oldest first.
func (h *History) Entries() ([]HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.read()
}

func (h *History) read() ([]HistoryEntry, error) {
	data, err := os.ReadFile(h.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
