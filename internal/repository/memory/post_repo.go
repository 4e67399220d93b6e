package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dkovacev/mingle/internal/domain"
)

type PostRepo struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]*domain.Post
	order []uuid.UUID // insertion order, the store's natural return order
}

func NewPostRepo() *PostRepo {
	return &PostRepo{posts: make(map[uuid.UUID]*domain.Post)}
}

func (r *PostRepo) Create(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[post.ID] = clonePost(post)
	r.order = append(r.order, post.ID)
	return nil
}

func (r *PostRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	return clonePost(post), nil
}

func (r *PostRepo) UpdateDescription(_ context.Context, id uuid.UUID, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post, ok := r.posts[id]; ok {
		post.Description = description
		post.UpdatedAt = time.Now()
	}
	return nil
}

func (r *PostRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *PostRepo) AddLike(_ context.Context, postID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post, ok := r.posts[postID]; ok && !domain.ContainsID(post.Likes, userID) {
		post.Likes = append(post.Likes, userID)
	}
	return nil
}

func (r *PostRepo) RemoveLike(_ context.Context, postID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post, ok := r.posts[postID]; ok {
		post.Likes = removeID(post.Likes, userID)
	}
	return nil
}

func (r *PostRepo) ListIDsByOwner(_ context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []uuid.UUID
	for _, id := range r.order {
		if r.posts[id].UserID == ownerID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func clonePost(p *domain.Post) *domain.Post {
	clone := *p
	clone.Likes = append([]uuid.UUID{}, p.Likes...)
	return &clone
}
