package repositories

import (
	"errors"
	"fmt"
	"testing"

	"nexivo_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Service{}))
	return db
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewUserRepository()

	require.NoError(t, repo.Create(db, &models.User{
		Username: "taken",
		Email:    "a@example.com",
		Role:     models.UserRoleUser,
	}))

	err := repo.Create(db, &models.User{
		Username: "taken",
		Email:    "b@example.com",
		Role:     models.UserRoleUser,
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserCreateSurfacesLookupFailure(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewUserRepository()

	// A broken store must not read as "username free".
	require.NoError(t, db.Migrator().DropTable(&models.User{}))

	err := repo.Create(db, &models.User{
		Username: "anyone",
		Email:    "a@example.com",
		Role:     models.UserRoleUser,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUsernameTaken)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: users.username")))
	assert.True(t, isUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}
