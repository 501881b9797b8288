package uploads

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a *multipart.FileHeader the way it would arrive off
// a real request, with the given declared content type.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	require.Len(t, form.File["resume"], 1)
	return form.File["resume"][0]
}

func TestStoredName(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	assert.Equal(t, "1700000000000_resume.pdf", StoredName("resume.pdf", now))
	assert.Equal(t, "1700000000000_my_r_sum_.pdf", StoredName("my résumé.pdf", now))
	assert.Equal(t, "1700000000000_.._.._etc_passwd", StoredName("../../etc/passwd", now))
}

func TestSaveAndServePath(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "uploads"))

	fh := fileHeader(t, "cv.pdf", "application/pdf", []byte("%PDF-1.4 test"))
	publicPath, err := store.Save(fh)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(publicPath, "/uploads/"))
	assert.True(t, strings.HasSuffix(publicPath, "_cv.pdf"))

	stored := filepath.Join(store.Dir, strings.TrimPrefix(publicPath, "/uploads/"))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 test"), data)
}

func TestSaveRejectsNonPDF(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "uploads"))

	fh := fileHeader(t, "cat.png", "image/png", []byte("not a pdf"))
	_, err := store.Save(fh)
	assert.ErrorIs(t, err, ErrNotPDF)

	// Nothing was written: the uploads root was never even created.
	_, statErr := os.Stat(store.Dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveRejectsOversized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "uploads"))
	store.MaxSize = 16

	fh := fileHeader(t, "big.pdf", "application/pdf", bytes.Repeat([]byte("a"), 17))
	_, err := store.Save(fh)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, statErr := os.Stat(store.Dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRemove(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "uploads"))

	fh := fileHeader(t, "cv.pdf", "application/pdf", []byte("%PDF-1.4"))
	publicPath, err := store.Save(fh)
	require.NoError(t, err)

	require.NoError(t, store.Remove(publicPath))
	entries, err := os.ReadDir(store.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
