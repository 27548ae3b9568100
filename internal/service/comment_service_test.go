package service

import (
	"context"
	"testing"

	"fixando/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCommentService_CreateComment(t *testing.T) {
	comments := noopCommentRepo()
	comments.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 4
		return nil
	}
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, Content: "nice", UserID: 1, PostID: 5}, nil
	}
	svc := NewCommentService(comments, noopPostRepo())

	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:  1,
		PostID:  5,
		Content: "nice",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 4, comment.ID)
}

func TestCommentService_CreateComment_PostMissing(t *testing.T) {
	posts := noopPostRepo()
	posts.existsFn = func(_ context.Context, _ uint) (bool, error) { return false, nil }
	svc := NewCommentService(noopCommentRepo(), posts)

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:  1,
		PostID:  99,
		Content: "nice",
	})
	requireAppCode(t, err, "NOT_FOUND")
}

func TestCommentService_CreateComment_EmptyContent(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopPostRepo())

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, PostID: 5})
	requireAppCode(t, err, "VALIDATION_ERROR")
}

func TestCommentService_ListComments_PostMissing(t *testing.T) {
	posts := noopPostRepo()
	posts.existsFn = func(_ context.Context, _ uint) (bool, error) { return false, nil }
	svc := NewCommentService(noopCommentRepo(), posts)

	_, err := svc.ListComments(context.Background(), 99)
	requireAppCode(t, err, "NOT_FOUND")
}

func TestCommentService_DeleteComment(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 2}, nil
	}
	svc := NewCommentService(comments, noopPostRepo())
	ctx := context.Background()

	err := svc.DeleteComment(ctx, DeleteCommentInput{UserID: 1, CommentID: 4})
	requireAppCode(t, err, "FORBIDDEN")

	require.NoError(t, svc.DeleteComment(ctx, DeleteCommentInput{UserID: 2, CommentID: 4}))

	comments.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
		return nil, gorm.ErrRecordNotFound
	}
	err = svc.DeleteComment(ctx, DeleteCommentInput{UserID: 1, CommentID: 4})
	requireAppCode(t, err, "NOT_FOUND")
}
