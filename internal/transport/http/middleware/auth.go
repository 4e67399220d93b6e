package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dkovacev/mingle/internal/auth"
)

type contextKey string

const userIDKey contextKey = "user_id"

// Auth requires an "Authorization: Bearer <token>" header. A missing header
// is 401, a token that fails verification is 403; the two are distinct on
// purpose. On success the subject id is stored in the request context.
func Auth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := resolveIdentity(w, r, tokens)
			if !ok {
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireOwner runs the same checks as Auth and additionally rejects callers
// whose token subject differs from the {id} path parameter.
func RequireOwner(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := resolveIdentity(w, r, tokens)
			if !ok {
				return
			}

			if userID.String() != chi.URLParam(r, "id") {
				writeMessage(w, http.StatusForbidden, "you are not allowed")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveIdentity(w http.ResponseWriter, r *http.Request, tokens *auth.TokenService) (uuid.UUID, bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		writeMessage(w, http.StatusUnauthorized, "no token found")
		return uuid.Nil, false
	}

	userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		writeMessage(w, http.StatusForbidden, "invalid token")
		return uuid.Nil, false
	}

	return userID, true
}

// GetUserID extracts the authenticated user id from the request context.
func GetUserID(ctx context.Context) uuid.UUID {
	return ctx.Value(userIDKey).(uuid.UUID)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(message)
}
