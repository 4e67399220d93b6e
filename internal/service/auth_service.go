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
	ErrUnknownUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
)

type AuthService struct {
	userRepo repository.UserRepository
	cipher   *auth.PasswordCipher
	tokens   *auth.TokenService
}

func NewAuthService(userRepo repository.UserRepository, cipher *auth.PasswordCipher, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cipher:   cipher,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	encrypted, err := s.cipher.Encrypt(input.Password)
	if err != nil {
		return fmt.Errorf("encrypting password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:         uuid.New(),
		Username:   input.Username,
		Email:      input.Email,
		Password:   encrypted,
		Followers:  []uuid.UUID{},
		Followings: []uuid.UUID{},
		Interests:  []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

// Login returns a signed access token for valid credentials. A stored
// password that fails to decrypt is treated as a mismatch, not an internal
// error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUnknownUsername
	}

	original, err := s.cipher.Decrypt(user.Password)
	if err != nil || original != input.Password {
		return "", ErrInvalidPassword
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}

	return token, nil
}
