package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkovacev/mingle/internal/domain"
)

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, user_id, description, likes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		post.ID, post.UserID, post.Description, post.Likes, post.CreatedAt, post.UpdatedAt,
	)
	return err
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query := `SELECT id, user_id, description, likes, created_at, updated_at FROM posts WHERE id = $1`

	var p domain.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.Description, &p.Likes, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepo) UpdateDescription(ctx context.Context, id uuid.UUID, description string) error {
	query := `UPDATE posts SET description = $1, updated_at = $2 WHERE id = $3`
	_, err := r.pool.Exec(ctx, query, description, time.Now(), id)
	return err
}

func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

func (r *PostRepo) AddLike(ctx context.Context, postID, userID uuid.UUID) error {
	query := `
		UPDATE posts
		SET likes = array_append(likes, $2), updated_at = now()
		WHERE id = $1 AND NOT ($2 = ANY(likes))`
	_, err := r.pool.Exec(ctx, query, postID, userID)
	return err
}

func (r *PostRepo) RemoveLike(ctx context.Context, postID, userID uuid.UUID) error {
	query := `
		UPDATE posts
		SET likes = array_remove(likes, $2), updated_at = now()
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, postID, userID)
	return err
}

func (r *PostRepo) ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT id FROM posts WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
