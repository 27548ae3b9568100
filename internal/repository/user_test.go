package repository

import (
	"context"
	"testing"

	"fixando/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_GetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	got, err := repo.GetByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Create(ctx, &models.User{Name: "Ana", Email: "ana@x.com", Password: "hashed"}))

	got, err = repo.GetByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.Name)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Name: "Ana", Email: "ana@x.com", Password: "hashed"}))

	err := repo.Create(ctx, &models.User{Name: "Impostor", Email: "ana@x.com", Password: "hashed"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
