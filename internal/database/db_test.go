package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ramanuj-ai/ramanuj-site/internal/auth"
	"github.com/ramanuj-ai/ramanuj-site/internal/models"
)

func TestConnectCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "app.db")
	db, err := Connect(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Contact{FirstName: "A", LastName: "B", Email: "a@b.co", Message: "m"}).Error)
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	db, err := Connect(filepath.Join(t.TempDir(), "app.db"), zap.NewNop())
	require.NoError(t, err)

	log := zap.NewNop()
	require.NoError(t, SeedAdmin(db, "admin@ramanuj.local", "admin123", log))
	require.NoError(t, SeedAdmin(db, "admin@ramanuj.local", "different-password", log))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1, "re-seeding the same email must be a no-op")

	assert.Equal(t, "admin", users[0].Role)
	assert.True(t, auth.VerifyPassword(users[0].PasswordHash, "admin123"))
	assert.False(t, auth.VerifyPassword(users[0].PasswordHash, "different-password"))
}
