package handlers

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const callerIDKey contextKey = "callerID"

// CallerID returns the authenticated user id stored by the auth middleware,
// or an empty string for anonymous requests.
func CallerID(ctx context.Context) string {
	id, _ := ctx.Value(callerIDKey).(string)
	return id
}

func withCallerID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, callerIDKey, id)
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// requireAuth resolves the bearer token to a user id before invoking next.
// Requests without a valid access token are rejected with 401.
func requireAuth(sessions SessionManager, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token := bearerToken(r)
		if token == "" {
			respondJSON(ctx, w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			return
		}

		userID, err := sessions.Resolve(ctx, token)
		if err != nil {
			respondJSON(ctx, w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired session"})
			return
		}

		next(w, r.WithContext(withCallerID(ctx, userID)))
	}
}

// optionalAuth resolves the bearer token when present but lets anonymous
// requests through. Views that personalize for a known caller use this.
func optionalAuth(sessions SessionManager, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if token := bearerToken(r); token != "" {
			if userID, err := sessions.Resolve(ctx, token); err == nil {
				r = r.WithContext(withCallerID(ctx, userID))
			}
		}

		next(w, r)
	}
}
