package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/videotube/backend/internal/logging"
	"github.com/videotube/backend/internal/repositories"
	"github.com/videotube/backend/internal/services"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.FromContext(ctx).Error("encode response body", "status", status, "error", err)
		return
	}

	logger := logging.FromContext(ctx)
	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("request failed", "status", status, "response", payload)
	case status >= http.StatusBadRequest:
		logger.Warn("request returned client error", "status", status, "response", payload)
	}
}

// writeError maps domain failures onto HTTP statuses. Client-attributable
// failures echo the failure detail; server-side failures return a generic
// message and rely on the log line for the cause.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		respondJSON(ctx, w, http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, repositories.ErrNotFound):
		respondJSON(ctx, w, http.StatusNotFound, map[string]string{"error": "resource not found"})
	case errors.Is(err, repositories.ErrConflict):
		respondJSON(ctx, w, http.StatusConflict, map[string]string{"error": "resource already exists"})
	case errors.Is(err, services.ErrDependency):
		logging.FromContext(ctx).Error("upstream dependency failed", "error", err)
		respondJSON(ctx, w, http.StatusBadGateway, map[string]string{"error": "upstream dependency failed"})
	default:
		logging.FromContext(ctx).Error("request handling failed", "error", err)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
