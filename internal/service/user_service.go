package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkovacev/mingle/internal/auth"
	"github.com/dkovacev/mingle/internal/domain"
	"github.com/dkovacev/mingle/internal/repository"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrSelfFollow       = errors.New("cannot follow your own account")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
)

type UserService struct {
	userRepo repository.UserRepository
	cipher   *auth.PasswordCipher
	notifier Notifier
}

func NewUserService(userRepo repository.UserRepository, cipher *auth.PasswordCipher, notifier Notifier) *UserService {
	return &UserService{
		userRepo: userRepo,
		cipher:   cipher,
		notifier: notifier,
	}
}

// UpdateProfileInput carries a partial update; nil fields are left untouched.
type UpdateProfileInput struct {
	Username  *string   `json:"username"`
	Email     *string   `json:"email"`
	Password  *string   `json:"password"`
	About     *string   `json:"about"`
	City      *string   `json:"city"`
	From      *string   `json:"from"`
	Interests *[]string `json:"interests"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		encrypted, err := s.cipher.Encrypt(*input.Password)
		if err != nil {
			return fmt.Errorf("encrypting password: %w", err)
		}
		user.Password = encrypted
	}
	if input.About != nil {
		user.About = *input.About
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.From != nil {
		user.From = *input.From
	}
	if input.Interests != nil {
		user.Interests = *input.Interests
	}
	user.UpdatedAt = time.Now()

	return s.userRepo.Update(ctx, user)
}

// Delete removes the account record only. Posts and follow edges pointing at
// the deleted user are left in place.
func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.userRepo.Delete(ctx, userID)
}

// Follow records the edge on both user records: callerID joins the target's
// followers, targetID joins the caller's followings. The two writes touch
// separate records and are not atomic together.
func (s *UserService) Follow(ctx context.Context, callerID, targetID uuid.UUID) error {
	if callerID == targetID {
		return ErrSelfFollow
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	if domain.ContainsID(target.Followers, callerID) {
		return ErrAlreadyFollowing
	}

	if err := s.userRepo.AddFollower(ctx, targetID, callerID); err != nil {
		return fmt.Errorf("adding follower: %w", err)
	}
	if err := s.userRepo.AddFollowing(ctx, callerID, targetID); err != nil {
		return fmt.Errorf("adding following: %w", err)
	}

	s.notifier.NotifyNewFollower(targetID, callerID)

	return nil
}

// Unfollow is the symmetric inverse of Follow.
func (s *UserService) Unfollow(ctx context.Context, callerID, targetID uuid.UUID) error {
	if callerID == targetID {
		return ErrSelfFollow
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	if !domain.ContainsID(target.Followers, callerID) {
		return ErrNotFollowing
	}

	if err := s.userRepo.RemoveFollower(ctx, targetID, callerID); err != nil {
		return fmt.Errorf("removing follower: %w", err)
	}
	if err := s.userRepo.RemoveFollowing(ctx, callerID, targetID); err != nil {
		return fmt.Errorf("removing following: %w", err)
	}

	return nil
}
