package service

import "github.com/google/uuid"

// Notifier pushes realtime events to connected users. The WebSocket hub
// implements it; NopNotifier keeps the services usable without one.
type Notifier interface {
	NotifyNewFollower(userID, followerID uuid.UUID)
	NotifyPostLiked(ownerID, postID, likerID uuid.UUID)
}

type NopNotifier struct{}

func (NopNotifier) NotifyNewFollower(userID, followerID uuid.UUID)     {}
func (NopNotifier) NotifyPostLiked(ownerID, postID, likerID uuid.UUID) {}
