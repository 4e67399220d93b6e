package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovacev/mingle/internal/domain"
	"github.com/dkovacev/mingle/internal/repository/memory"
)

func seedUser(t *testing.T, repo *memory.UserRepo, username string) *domain.User {
	t.Helper()
	now := time.Now()
	user := &domain.User{
		ID:         uuid.New(),
		Username:   username,
		Email:      username + "@example.com",
		Password:   "encrypted",
		Followers:  []uuid.UUID{},
		Followings: []uuid.UUID{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserService_Follow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userRepo := memory.NewUserRepo()
	notifier := &spyNotifier{}
	svc := NewUserService(userRepo, newTestCipher(t), notifier)

	alice := seedUser(t, userRepo, "alice")
	bob := seedUser(t, userRepo, "bob")

	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))

	// Edge is recorded on both records
	gotBob, err := userRepo.GetByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.True(t, domain.ContainsID(gotBob.Followers, alice.ID))

	gotAlice, err := userRepo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, domain.ContainsID(gotAlice.Followings, bob.ID))

	assert.Equal(t, []uuid.UUID{bob.ID}, notifier.followers)
}

func TestUserService_Follow_Self(t *testing.T) {
	t.Parallel()

	userRepo := memory.NewUserRepo()
	svc := NewUserService(userRepo, newTestCipher(t), NopNotifier{})
	alice := seedUser(t, userRepo, "alice")

	err := svc.Follow(context.Background(), alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestUserService_Follow_Twice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userRepo := memory.NewUserRepo()
	svc := NewUserService(userRepo, newTestCipher(t), NopNotifier{})

	alice := seedUser(t, userRepo, "alice")
	bob := seedUser(t, userRepo, "bob")

	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))

	err := svc.Follow(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)

	// State unchanged after the failed call
	gotBob, err := userRepo.GetByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{alice.ID}, gotBob.Followers)

	gotAlice, err := userRepo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{bob.ID}, gotAlice.Followings)
}

func TestUserService_Follow_UnknownTarget(t *testing.T) {
	t.Parallel()

	userRepo := memory.NewUserRepo()
	svc := NewUserService(userRepo, newTestCipher(t), NopNotifier{})
	alice := seedUser(t, userRepo, "alice")

	err := svc.Follow(context.Background(), alice.ID, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_FollowUnfollow_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userRepo := memory.NewUserRepo()
	svc := NewUserService(userRepo, newTestCipher(t), NopNotifier{})

	alice := seedUser(t, userRepo, "alice")
	bob := seedUser(t, userRepo, "bob")

	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, svc.Unfollow(ctx, alice.ID, bob.ID))

	gotBob, err := userRepo.GetByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, gotBob.Followers)

	gotAlice, err := userRepo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, gotAlice.Followings)
}

func TestUserService_Unfollow_NotFollowing(t *testing.T) {
	t.Parallel()

	userRepo := memory.NewUserRepo()
	svc := NewUserService(userRepo, newTestCipher(t), NopNotifier{})

	alice := seedUser(t, userRepo, "alice")
	bob := seedUser(t, userRepo, "bob")

	err := svc.Unfollow(context.Background(), alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFollowing)
}

func TestUserService_Unfollow_Self(t *testing.T) {
	t.Parallel()

	userRepo := memory.NewUserRepo()
	svc := NewUserService(userRepo, newTestCipher(t), NopNotifier{})
	alice := seedUser(t, userRepo, "alice")

	err := svc.Unfollow(context.Background(), alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userRepo := memory.NewUserRepo()
	cipher := newTestCipher(t)
	svc := NewUserService(userRepo, cipher, NopNotifier{})

	alice := seedUser(t, userRepo, "alice")

	about := "hello"
	city := "Istanbul"
	password := "new-password"
	err := svc.UpdateProfile(ctx, alice.ID, UpdateProfileInput{
		About:    &about,
		City:     &city,
		Password: &password,
	})
	require.NoError(t, err)

	got, err := userRepo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.About)
	assert.Equal(t, "Istanbul", got.City)
	assert.Equal(t, "alice", got.Username, "untouched fields keep their values")

	// Supplied password was re-encrypted before the write
	plain, err := cipher.Decrypt(got.Password)
	require.NoError(t, err)
	assert.Equal(t, "new-password", plain)
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := NewUserService(memory.NewUserRepo(), newTestCipher(t), NopNotifier{})

	err := svc.UpdateProfile(context.Background(), uuid.New(), UpdateProfileInput{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userRepo := memory.NewUserRepo()
	svc := NewUserService(userRepo, newTestCipher(t), NopNotifier{})

	alice := seedUser(t, userRepo, "alice")
	bob := seedUser(t, userRepo, "bob")
	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))

	require.NoError(t, svc.Delete(ctx, alice.ID))

	got, err := userRepo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deletion does not cascade: bob still lists alice as a follower.
	gotBob, err := userRepo.GetByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.True(t, domain.ContainsID(gotBob.Followers, alice.ID))
}
