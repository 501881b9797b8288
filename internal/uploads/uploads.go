// Package uploads handles résumé file intake: type and size checks,
// collision-resistant stored names, and persistence under a single
// uploads root served back at /uploads/.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"time"
)

// DefaultMaxSize is the résumé size ceiling.
const DefaultMaxSize = 5 * 1024 * 1024 // 5 MiB

const pdfContentType = "application/pdf"

var (
	// ErrNotPDF is returned when the declared content type of an upload
	// is anything other than application/pdf.
	ErrNotPDF = errors.New("only PDF files are allowed")
	// ErrTooLarge is returned when an upload exceeds the size ceiling.
	ErrTooLarge = errors.New("file exceeds the 5MB size limit")
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// Store persists uploaded résumés under a single root directory.
type Store struct {
	Dir     string
	MaxSize int64
}

// NewStore returns a Store rooted at dir with the default size ceiling.
func NewStore(dir string) *Store {
	return &Store{Dir: dir, MaxSize: DefaultMaxSize}
}

// Save validates and persists one uploaded file, returning the public
// relative path (/uploads/<stored-name>) to record on the application.
// Validation failures return ErrNotPDF or ErrTooLarge before anything
// touches disk, so a rejected upload never leaves a file behind.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Header.Get("Content-Type") != pdfContentType {
		return "", ErrNotPDF
	}
	if fh.Size > s.MaxSize {
		return "", ErrTooLarge
	}

	name := StoredName(fh.Filename, time.Now())
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("close %s: %w", name, err)
	}

	return "/uploads/" + name, nil
}

// Remove deletes a stored file given its public path. Used to roll back
// when the application row fails to persist after the file was written.
func (s *Store) Remove(publicPath string) error {
	return os.Remove(filepath.Join(s.Dir, path.Base(publicPath)))
}

// StoredName combines a timestamp with a sanitized copy of the original
// filename: every character outside [a-zA-Z0-9_.-] becomes an
// underscore, which also strips any path separators the client sent.
func StoredName(original string, now time.Time) string {
	safe := unsafeChars.ReplaceAllString(original, "_")
	return fmt.Sprintf("%d_%s", now.UnixMilli(), safe)
}
