package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovacev/mingle/internal/domain"
	"github.com/dkovacev/mingle/internal/repository/memory"
)

func newPostService(t *testing.T) (*PostService, *memory.PostRepo, *memory.UserRepo, *spyNotifier) {
	t.Helper()
	postRepo := memory.NewPostRepo()
	userRepo := memory.NewUserRepo()
	notifier := &spyNotifier{}
	return NewPostService(postRepo, userRepo, nil, notifier), postRepo, userRepo, notifier
}

func seedPost(t *testing.T, repo *memory.PostRepo, svc *PostService, ownerID uuid.UUID, description string) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, svc.Create(ctx, ownerID, description))
	ids, err := repo.ListIDsByOwner(ctx, ownerID)
	require.NoError(t, err)
	require.NotEmpty(t, ids)
	return ids[len(ids)-1]
}

func TestPostService_Create_Empty(t *testing.T) {
	t.Parallel()

	svc, postRepo, _, _ := newPostService(t)
	ownerID := uuid.New()

	err := svc.Create(context.Background(), ownerID, "")
	assert.ErrorIs(t, err, ErrEmptyPost)

	ids, err := postRepo.ListIDsByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Empty(t, ids, "no post persisted")
}

func TestPostService_Create_TooLong(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newPostService(t)

	err := svc.Create(context.Background(), uuid.New(), strings.Repeat("x", domain.MaxPostDescriptionLen+1))
	assert.ErrorIs(t, err, ErrPostTooLong)
}

func TestPostService_Update_OwnershipAndExistence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, postRepo, _, _ := newPostService(t)
	ownerID, otherID := uuid.New(), uuid.New()
	postID := seedPost(t, postRepo, svc, ownerID, "original")

	err := svc.Update(ctx, uuid.New(), ownerID, "changed")
	assert.ErrorIs(t, err, ErrPostNotFound)

	err = svc.Update(ctx, postID, otherID, "changed")
	assert.ErrorIs(t, err, ErrNotPostOwner)

	post, err := postRepo.GetByID(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, "original", post.Description, "failed updates leave the post alone")

	require.NoError(t, svc.Update(ctx, postID, ownerID, "changed"))
	post, err = postRepo.GetByID(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, "changed", post.Description)
}

func TestPostService_Delete_OwnerOnly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, postRepo, _, _ := newPostService(t)
	ownerID, otherID := uuid.New(), uuid.New()
	postID := seedPost(t, postRepo, svc, ownerID, "keep me")

	err := svc.Delete(ctx, postID, otherID)
	assert.ErrorIs(t, err, ErrNotPostOwner)

	post, err := postRepo.GetByID(ctx, postID)
	require.NoError(t, err)
	assert.NotNil(t, post, "post still present after forbidden delete")

	require.NoError(t, svc.Delete(ctx, postID, ownerID))
	post, err = postRepo.GetByID(ctx, postID)
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestPostService_ToggleLike_Pair(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, postRepo, _, notifier := newPostService(t)
	ownerID, likerID := uuid.New(), uuid.New()
	postID := seedPost(t, postRepo, svc, ownerID, "like me")

	liked, err := svc.ToggleLike(ctx, postID, likerID)
	require.NoError(t, err)
	assert.True(t, liked)

	post, err := postRepo.GetByID(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{likerID}, post.Likes)
	assert.Equal(t, []uuid.UUID{postID}, notifier.likes)

	liked, err = svc.ToggleLike(ctx, postID, likerID)
	require.NoError(t, err)
	assert.False(t, liked)

	post, err = postRepo.GetByID(ctx, postID)
	require.NoError(t, err)
	assert.Empty(t, post.Likes, "a toggle pair returns to the original set")
	assert.Len(t, notifier.likes, 1, "removing a like does not notify")
}

func TestPostService_ToggleLike_UnknownPost(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newPostService(t)

	_, err := svc.ToggleLike(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostService_Timeline(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, postRepo, userRepo, _ := newPostService(t)

	alice := seedUser(t, userRepo, "alice")
	bob := seedUser(t, userRepo, "bob")
	carol := seedUser(t, userRepo, "carol")

	// alice follows bob and carol
	require.NoError(t, userRepo.AddFollowing(ctx, alice.ID, bob.ID))
	require.NoError(t, userRepo.AddFollowing(ctx, alice.ID, carol.ID))

	bobFirst := seedPost(t, postRepo, svc, bob.ID, "bob 1")
	carolFirst := seedPost(t, postRepo, svc, carol.ID, "carol 1")
	bobSecond := seedPost(t, postRepo, svc, bob.ID, "bob 2")
	seedPost(t, postRepo, svc, alice.ID, "alice's own post")

	ids, err := svc.Timeline(ctx, alice.ID)
	require.NoError(t, err)

	// Concatenated per followed user, in-store order within each; the
	// caller's own posts are not part of the timeline.
	assert.Equal(t, []uuid.UUID{bobFirst, bobSecond, carolFirst}, ids)
}

func TestPostService_Timeline_NoFollowings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, userRepo, _ := newPostService(t)
	alice := seedUser(t, userRepo, "alice")

	ids, err := svc.Timeline(ctx, alice.ID)
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestPostService_Timeline_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newPostService(t)

	_, err := svc.Timeline(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
