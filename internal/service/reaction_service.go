package service

import (
	"context"

	"fixando/internal/models"
	"fixando/internal/repository"
)

// Reaction toggle outcomes, surfaced in the response message.
const (
	ReactionAdded   = "Reaction added"
	ReactionRemoved = "Reaction removed"
	ReactionUpdated = "Reaction updated"
)

// ReactionService implements the like/dislike toggle: reacting with the
// same value removes the reaction, reacting with the opposite value flips
// it, and a first reaction creates it.
type ReactionService struct {
	reactionRepo repository.ReactionRepository
	postRepo     repository.PostRepository
}

type ReactInput struct {
	UserID uint
	PostID uint
	IsLike bool
}

// ReactResult reports the transition taken and the remaining reaction, nil
// after a removal.
type ReactResult struct {
	Outcome  string
	Reaction *models.Like
}

func NewReactionService(reactionRepo repository.ReactionRepository, postRepo repository.PostRepository) *ReactionService {
	return &ReactionService{reactionRepo: reactionRepo, postRepo: postRepo}
}

func (s *ReactionService) React(ctx context.Context, in ReactInput) (*ReactResult, error) {
	exists, err := s.postRepo.Exists(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}

	current, err := s.reactionRepo.Get(ctx, in.UserID, in.PostID)
	if err != nil {
		return nil, err
	}

	if current == nil {
		like := &models.Like{UserID: in.UserID, PostID: in.PostID, IsLike: in.IsLike}
		inserted, err := s.reactionRepo.Insert(ctx, like)
		if err != nil {
			return nil, err
		}
		if inserted {
			return &ReactResult{Outcome: ReactionAdded, Reaction: like}, nil
		}
		// A concurrent request created the row between the read and the
		// insert; re-read and resolve against the winner.
		current, err = s.reactionRepo.Get(ctx, in.UserID, in.PostID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			// Raced with a concurrent removal; the end state is "no
			// reaction", same as a toggle-off.
			return &ReactResult{Outcome: ReactionRemoved}, nil
		}
	}

	if current.IsLike == in.IsLike {
		if err := s.reactionRepo.Delete(ctx, current.ID); err != nil {
			return nil, err
		}
		return &ReactResult{Outcome: ReactionRemoved}, nil
	}

	current.IsLike = in.IsLike
	if err := s.reactionRepo.Update(ctx, current); err != nil {
		return nil, err
	}
	return &ReactResult{Outcome: ReactionUpdated, Reaction: current}, nil
}
