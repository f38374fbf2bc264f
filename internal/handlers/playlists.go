package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/videotube/backend/internal/models"
)

// PlaylistHandler implements the playlist view and mutation endpoints.
type PlaylistHandler struct {
	Playlists PlaylistManager
	Views     ViewComposer
}

// Create handles POST /api/v1/playlists requests.
func (h PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req playlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	playlist, err := h.Playlists.Create(ctx, CallerID(ctx), req.Name, req.Description)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, playlistResponse(playlist))
}

// Get handles GET /api/v1/playlists/{playlistID} requests.
func (h PlaylistHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	playlist, err := h.Views.PlaylistByID(ctx, r.PathValue("playlistID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"playlist": playlist})
}

// ListForUser handles GET /api/v1/playlists/user/{userID} requests.
func (h PlaylistHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	playlists, err := h.Views.PlaylistsByOwner(ctx, r.PathValue("userID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"playlists": playlists})
}

// Update handles PATCH /api/v1/playlists/{playlistID} requests.
func (h PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req playlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	playlist, err := h.Playlists.Update(ctx, CallerID(ctx), r.PathValue("playlistID"), req.Name, req.Description)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, playlistResponse(playlist))
}

// Delete handles DELETE /api/v1/playlists/{playlistID} requests.
func (h PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Playlists.Delete(ctx, CallerID(ctx), r.PathValue("playlistID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]string{"status": "playlist deleted"})
}

// AddVideo handles PATCH /api/v1/playlists/add/{videoID}/{playlistID} requests.
func (h PlaylistHandler) AddVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Playlists.AddVideo(ctx, CallerID(ctx), r.PathValue("playlistID"), r.PathValue("videoID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]string{"status": "video added"})
}

// RemoveVideo handles PATCH /api/v1/playlists/remove/{videoID}/{playlistID} requests.
func (h PlaylistHandler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Playlists.RemoveVideo(ctx, CallerID(ctx), r.PathValue("playlistID"), r.PathValue("videoID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]string{"status": "video removed"})
}

type playlistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type playlistPayload struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

func playlistResponse(playlist models.Playlist) playlistPayload {
	return playlistPayload{
		ID:          playlist.ID,
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
		CreatedAt:   playlist.CreatedAt.Format(timeFormat),
	}
}
