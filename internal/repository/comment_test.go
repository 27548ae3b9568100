package repository

import (
	"context"
	"testing"

	"fixando/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_CreateListDelete(t *testing.T) {
	db := newTestDB(t)
	user, post := seedUserAndPost(t, db)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	first := &models.Comment{Content: "first", UserID: user.ID, PostID: post.ID}
	require.NoError(t, repo.Create(ctx, first))
	second := &models.Comment{Content: "second", UserID: user.ID, PostID: post.ID}
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Content)
	assert.Equal(t, "Ana", got.User.Name)

	comments, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)

	require.NoError(t, repo.Delete(ctx, first.ID))
	comments, err = repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	// Deleting a missing comment is a no-op.
	require.NoError(t, repo.Delete(ctx, 999))
}

func TestCommentRepository_MutationsInvalidateCachedPost(t *testing.T) {
	db := newTestDB(t)
	useTestCache(t)
	user, post := seedUserAndPost(t, db)
	comments := NewCommentRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	// An anonymous read caches the post with its counts.
	cached, err := posts.GetByID(ctx, post.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cached.CommentsCount)

	comment := &models.Comment{Content: "hello", UserID: user.ID, PostID: post.ID}
	require.NoError(t, comments.Create(ctx, comment))

	cached, err = posts.GetByID(ctx, post.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cached.CommentsCount, "comment creation must evict the cached post")

	require.NoError(t, comments.Delete(ctx, comment.ID))

	cached, err = posts.GetByID(ctx, post.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cached.CommentsCount, "comment deletion must evict the cached post")
}
