package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkovacev/mingle/internal/cache"
	"github.com/dkovacev/mingle/internal/domain"
	"github.com/dkovacev/mingle/internal/repository"
)

var (
	ErrEmptyPost    = errors.New("the post can't be empty")
	ErrPostTooLong  = errors.New("the post is too long")
	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("not the post owner")
)

type PostService struct {
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	timelines *cache.TimelineCache
	notifier  Notifier
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, timelines *cache.TimelineCache, notifier Notifier) *PostService {
	return &PostService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		timelines: timelines,
		notifier:  notifier,
	}
}

func (s *PostService) Create(ctx context.Context, ownerID uuid.UUID, description string) error {
	if description == "" {
		return ErrEmptyPost
	}
	if len(description) > domain.MaxPostDescriptionLen {
		return ErrPostTooLong
	}

	now := time.Now()
	post := &domain.Post{
		ID:          uuid.New(),
		UserID:      ownerID,
		Description: description,
		Likes:       []uuid.UUID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return fmt.Errorf("creating post: %w", err)
	}

	return nil
}

// Update replaces the description only; the store touches updated_at.
func (s *PostService) Update(ctx context.Context, postID, callerID uuid.UUID, description string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != callerID {
		return ErrNotPostOwner
	}
	if description == "" {
		return ErrEmptyPost
	}
	if len(description) > domain.MaxPostDescriptionLen {
		return ErrPostTooLong
	}

	return s.postRepo.UpdateDescription(ctx, postID, description)
}

func (s *PostService) Delete(ctx context.Context, postID, callerID uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != callerID {
		return ErrNotPostOwner
	}

	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike adds the caller to the post's likers, or removes them if they
// already liked it. Returns true when the post was liked, false when the
// like was removed.
func (s *PostService) ToggleLike(ctx context.Context, postID, callerID uuid.UUID) (bool, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, ErrPostNotFound
	}

	if domain.ContainsID(post.Likes, callerID) {
		if err := s.postRepo.RemoveLike(ctx, postID, callerID); err != nil {
			return false, fmt.Errorf("removing like: %w", err)
		}
		return false, nil
	}

	if err := s.postRepo.AddLike(ctx, postID, callerID); err != nil {
		return false, fmt.Errorf("adding like: %w", err)
	}

	s.notifier.NotifyPostLiked(post.UserID, postID, callerID)

	return true, nil
}

// Timeline collects the ids of every post written by users the caller
// follows, one query per followed user, concatenated in per-author order.
// There is deliberately no global sort across authors.
func (s *PostService) Timeline(ctx context.Context, callerID uuid.UUID) ([]uuid.UUID, error) {
	if ids, ok := s.timelines.Get(callerID); ok {
		return ids, nil
	}

	user, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	postIDs := []uuid.UUID{}
	for _, followingID := range user.Followings {
		ids, err := s.postRepo.ListIDsByOwner(ctx, followingID)
		if err != nil {
			return nil, fmt.Errorf("listing posts of %s: %w", followingID, err)
		}
		postIDs = append(postIDs, ids...)
	}

	s.timelines.Set(callerID, postIDs)

	return postIDs, nil
}
