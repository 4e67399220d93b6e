// Package memory holds in-memory implementations of the repository
// interfaces. They back the service and handler tests and intentionally
// favor clarity over performance.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dkovacev/mingle/internal/domain"
)

type UserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *UserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.users[user.ID]; ok {
		clone := cloneUser(user)
		// follower sets are owned by the Add/Remove operations
		clone.Followers = stored.Followers
		clone.Followings = stored.Followings
		r.users[user.ID] = clone
	}
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *UserRepo) AddFollower(_ context.Context, userID, followerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok && !domain.ContainsID(user.Followers, followerID) {
		user.Followers = append(user.Followers, followerID)
	}
	return nil
}

func (r *UserRepo) RemoveFollower(_ context.Context, userID, followerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		user.Followers = removeID(user.Followers, followerID)
	}
	return nil
}

func (r *UserRepo) AddFollowing(_ context.Context, userID, followingID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok && !domain.ContainsID(user.Followings, followingID) {
		user.Followings = append(user.Followings, followingID)
	}
	return nil
}

func (r *UserRepo) RemoveFollowing(_ context.Context, userID, followingID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		user.Followings = removeID(user.Followings, followingID)
	}
	return nil
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	clone.Followers = append([]uuid.UUID{}, u.Followers...)
	clone.Followings = append([]uuid.UUID{}, u.Followings...)
	clone.Interests = append([]string{}, u.Interests...)
	return &clone
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
