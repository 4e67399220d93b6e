package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkovacev/mingle/internal/domain"
)

const userColumns = "id, username, email, password, followers, followings, about, city, from_location, interests, created_at, updated_at"

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, email, password, followers, followings, about, city, from_location, interests, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.Password,
		user.Followers, user.Followings,
		user.About, user.City, user.From, user.Interests,
		user.CreatedAt, user.UpdatedAt,
	)
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
}

func (r *UserRepo) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, password = $4, about = $5, city = $6,
			from_location = $7, interests = $8, updated_at = $9
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.Password,
		user.About, user.City, user.From, user.Interests, user.UpdatedAt,
	)
	return err
}

func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

// The ANY guards keep the id sets duplicate-free even if two requests race
// past the service-level membership check.

func (r *UserRepo) AddFollower(ctx context.Context, userID, followerID uuid.UUID) error {
	query := `
		UPDATE users
		SET followers = array_append(followers, $2), updated_at = now()
		WHERE id = $1 AND NOT ($2 = ANY(followers))`
	_, err := r.pool.Exec(ctx, query, userID, followerID)
	return err
}

func (r *UserRepo) RemoveFollower(ctx context.Context, userID, followerID uuid.UUID) error {
	query := `
		UPDATE users
		SET followers = array_remove(followers, $2), updated_at = now()
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, userID, followerID)
	return err
}

func (r *UserRepo) AddFollowing(ctx context.Context, userID, followingID uuid.UUID) error {
	query := `
		UPDATE users
		SET followings = array_append(followings, $2), updated_at = now()
		WHERE id = $1 AND NOT ($2 = ANY(followings))`
	_, err := r.pool.Exec(ctx, query, userID, followingID)
	return err
}

func (r *UserRepo) RemoveFollowing(ctx context.Context, userID, followingID uuid.UUID) error {
	query := `
		UPDATE users
		SET followings = array_remove(followings, $2), updated_at = now()
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, userID, followingID)
	return err
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.Password,
		&u.Followers, &u.Followings,
		&u.About, &u.City, &u.From, &u.Interests,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
