package repository

import (
	"context"
	"errors"

	"fixando/internal/cache"
	"fixando/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionRepository persists like/dislike rows. The unique index on
// (user_id, post_id) is the concurrency-correctness mechanism: a raced
// duplicate insert must resolve to "already exists", never two rows.
type ReactionRepository interface {
	Get(ctx context.Context, userID, postID uint) (*models.Like, error)
	// Insert adds a reaction row; inserted is false when a row for the
	// (user, post) pair already exists.
	Insert(ctx context.Context, like *models.Like) (inserted bool, err error)
	Update(ctx context.Context, like *models.Like) error
	Delete(ctx context.Context, id uint) error
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new ReactionRepository
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// Get returns (nil, nil) when the user has no reaction on the post.
func (r *reactionRepository) Get(ctx context.Context, userID, postID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *reactionRepository) Insert(ctx context.Context, like *models.Like) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	cache.InvalidatePost(ctx, like.PostID)
	cache.InvalidatePostsList(ctx)
	return true, nil
}

func (r *reactionRepository) Update(ctx context.Context, like *models.Like) error {
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("id = ?", like.ID).
		Update("is_like", like.IsLike).Error
	if err == nil {
		cache.InvalidatePost(ctx, like.PostID)
		cache.InvalidatePostsList(ctx)
	}
	return err
}

func (r *reactionRepository) Delete(ctx context.Context, id uint) error {
	var like models.Like
	if err := r.db.WithContext(ctx).First(&like, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Like{}, id).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, like.PostID)
	cache.InvalidatePostsList(ctx)
	return nil
}
