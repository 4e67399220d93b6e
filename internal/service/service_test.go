package service

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dkovacev/mingle/internal/auth"
)

// spyNotifier records notifications for assertions.
type spyNotifier struct {
	mu        sync.Mutex
	followers []uuid.UUID // users that gained a follower
	likes     []uuid.UUID // posts that were liked
}

func (n *spyNotifier) NotifyNewFollower(userID, followerID uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.followers = append(n.followers, userID)
}

func (n *spyNotifier) NotifyPostLiked(ownerID, postID, likerID uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.likes = append(n.likes, postID)
}

func newTestCipher(t *testing.T) *auth.PasswordCipher {
	t.Helper()
	cipher, err := auth.NewPasswordCipher("test-password-secret")
	require.NoError(t, err)
	return cipher
}
