package repository

import (
	"testing"

	"fixando/internal/cache"
	"fixando/internal/database"
	"fixando/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         database.NewGormLogger(),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

// useTestCache points the package cache at a throwaway Redis instance for
// the duration of the test.
func useTestCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })
	return mr
}

// seedUserAndPost inserts one user and one post owned by that user.
func seedUserAndPost(t *testing.T, db *gorm.DB) (*models.User, *models.Post) {
	t.Helper()

	user := &models.User{Name: "Ana", Email: "ana@x.com", Password: "hashed"}
	require.NoError(t, db.Create(user).Error)

	post := &models.Post{Title: "First", Content: "Hello", UserID: user.ID}
	require.NoError(t, db.Create(post).Error)

	return user, post
}
