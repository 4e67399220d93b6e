package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/dkovacev/mingle/internal/service"
	"github.com/dkovacev/mingle/internal/transport/http/middleware"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.userService.UpdateProfile(r.Context(), userID, input); err != nil {
		log.Printf("ERROR update user: %v", err)
		writeJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, "succesfully updated")
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := h.userService.Delete(r.Context(), userID); err != nil {
		log.Printf("ERROR delete user: %v", err)
		writeJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, "account has been deleted")
}

func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	targetID, ok := decodeTargetID(w, r)
	if !ok {
		return
	}

	if err := h.userService.Follow(r.Context(), callerID, targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFollow):
			writeJSON(w, http.StatusForbidden, "you can't follow your own account")
		case errors.Is(err, service.ErrAlreadyFollowing):
			writeJSON(w, http.StatusForbidden, "you are already following this user")
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, "user not found")
		default:
			log.Printf("ERROR follow: %v", err)
			writeJSON(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, "user has been followed")
}

func (h *UserHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	targetID, ok := decodeTargetID(w, r)
	if !ok {
		return
	}

	if err := h.userService.Unfollow(r.Context(), callerID, targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFollow):
			writeJSON(w, http.StatusForbidden, "you can't unfollow your own account")
		case errors.Is(err, service.ErrNotFollowing):
			writeJSON(w, http.StatusForbidden, "you are not following this user")
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, "user not found")
		default:
			log.Printf("ERROR unfollow: %v", err)
			writeJSON(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, "user has been unfollowed")
}

func decodeTargetID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	var input struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body")
		return uuid.Nil, false
	}

	targetID, err := uuid.Parse(input.ID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid user id")
		return uuid.Nil, false
	}

	return targetID, true
}
