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

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	var input struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.postService.Create(r.Context(), callerID, input.Description); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyPost):
			writeJSON(w, http.StatusForbidden, "the post can't be empty!")
		case errors.Is(err, service.ErrPostTooLong):
			writeJSON(w, http.StatusForbidden, "the post is too long!")
		default:
			log.Printf("ERROR create post: %v", err)
			writeJSON(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, "successfully posted")
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	var input struct {
		PostID      string `json:"postId"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	postID, err := uuid.Parse(input.PostID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.postService.Update(r.Context(), postID, callerID, input.Description); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			writeJSON(w, http.StatusNotFound, "post not found")
		case errors.Is(err, service.ErrNotPostOwner):
			writeJSON(w, http.StatusForbidden, "you can only update your post!")
		case errors.Is(err, service.ErrEmptyPost):
			writeJSON(w, http.StatusForbidden, "the post can't be empty!")
		case errors.Is(err, service.ErrPostTooLong):
			writeJSON(w, http.StatusForbidden, "the post is too long!")
		default:
			log.Printf("ERROR update post: %v", err)
			writeJSON(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, "the post has been updated")
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	var input struct {
		PostID string `json:"postId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	postID, err := uuid.Parse(input.PostID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.postService.Delete(r.Context(), postID, callerID); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			writeJSON(w, http.StatusNotFound, "post not found")
		case errors.Is(err, service.ErrNotPostOwner):
			writeJSON(w, http.StatusForbidden, "you can only delete your post!")
		default:
			log.Printf("ERROR delete post: %v", err)
			writeJSON(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, "the post has been deleted")
}

func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	var input struct {
		PostID string `json:"postId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	postID, err := uuid.Parse(input.PostID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid post id")
		return
	}

	liked, err := h.postService.ToggleLike(r.Context(), postID, callerID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			writeJSON(w, http.StatusNotFound, "post not found")
		} else {
			log.Printf("ERROR like post: %v", err)
			writeJSON(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if liked {
		writeJSON(w, http.StatusOK, "you have liked the post")
	} else {
		writeJSON(w, http.StatusOK, "you have disliked the post")
	}
}

func (h *PostHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	ids, err := h.postService.Timeline(r.Context(), callerID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, "user not found")
		} else {
			log.Printf("ERROR timeline: %v", err)
			writeJSON(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, ids)
}
