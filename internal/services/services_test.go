package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ramanuj-ai/ramanuj-site/internal/database"
	"github.com/ramanuj-ai/ramanuj-site/internal/dtos"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	return db
}

func TestJobServiceCreateAndList(t *testing.T) {
	jobs := NewJobService(testDB(t))

	_, err := jobs.Create(dtos.JobCreationRequest{Title: "First", Requirements: "Go\n\nSQL\n"})
	require.NoError(t, err)
	_, err = jobs.Create(dtos.JobCreationRequest{Title: "Second"})
	require.NoError(t, err)

	list, err := jobs.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].Title, "newest first")
	assert.Equal(t, []string{}, list[0].Requirements)
	assert.Equal(t, []string{"Go", "SQL"}, list[1].Requirements)
}

func TestJobServiceDeleteCascades(t *testing.T) {
	db := testDB(t)
	jobs := NewJobService(db)
	apps := NewApplicationService(db)

	job, err := jobs.Create(dtos.JobCreationRequest{Title: "Doomed"})
	require.NoError(t, err)
	survivor, err := jobs.Create(dtos.JobCreationRequest{Title: "Survivor"})
	require.NoError(t, err)

	for _, id := range []uint{job.ID, survivor.ID, job.ID} {
		_, err := apps.Create(id, dtos.ApplicationSubmission{Name: "A", Email: "a@b.co", Phone: "5551234567"}, nil)
		require.NoError(t, err)
	}

	require.NoError(t, jobs.Delete(job.ID))

	exists, err := jobs.Exists(job.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	count, err := apps.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "cascade removes the deleted job's applications")

	assert.ErrorIs(t, jobs.Delete(job.ID), ErrJobNotFound)
}

func TestContactServiceTrimsAndLists(t *testing.T) {
	contacts := NewContactService(testDB(t))

	_, err := contacts.Create(dtos.ContactSubmission{
		FirstName: "  Ada ", LastName: "Lovelace", Email: " ada@example.com ", Message: "Hello",
	})
	require.NoError(t, err)

	list, err := contacts.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ada", list[0].FirstName)
	assert.Equal(t, "ada@example.com", list[0].Email)
	assert.False(t, list[0].SubmittedAt.IsZero())
}

func TestApplicationServiceListJoinsJobTitle(t *testing.T) {
	db := testDB(t)
	jobs := NewJobService(db)
	apps := NewApplicationService(db)

	job, err := jobs.Create(dtos.JobCreationRequest{Title: "Engineer"})
	require.NoError(t, err)

	resume := "/uploads/123_cv.pdf"
	_, err = apps.Create(job.ID, dtos.ApplicationSubmission{
		Name: "Grace Hopper", Email: "grace@example.com", Phone: "5551234567", CoverLetter: "Hi",
	}, &resume)
	require.NoError(t, err)

	records, err := apps.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Engineer", records[0].JobTitle)
	require.NotNil(t, records[0].ResumePath)
	assert.Equal(t, resume, *records[0].ResumePath)
}

func TestUserServiceFindByEmail(t *testing.T) {
	db := testDB(t)
	require.NoError(t, database.SeedAdmin(db, "admin@ramanuj.local", "admin123", zap.NewNop()))

	users := NewUserService(db)
	user, err := users.FindByEmail("admin@ramanuj.local")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)

	_, err = users.FindByEmail("nobody@ramanuj.local")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
