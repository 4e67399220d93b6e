package ws

import (
	"log"

	"github.com/google/uuid"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyNewFollower(userID, followerID uuid.UUID) {
	evt, err := NewEvent(EventTypeFollowerNew, FollowerPayload{FollowerID: followerID})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.SendToUser(userID, evt)
}

func (n *HubNotifier) NotifyPostLiked(ownerID, postID, likerID uuid.UUID) {
	evt, err := NewEvent(EventTypePostLiked, LikePayload{PostID: postID, LikerID: likerID})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.SendToUser(ownerID, evt)
}
