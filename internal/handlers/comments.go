package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/videotube/backend/internal/models"
)

// CommentHandler implements the comment listing and mutation endpoints.
type CommentHandler struct {
	Comments CommentManager
	Views    ViewComposer
}

// List handles GET /api/v1/videos/{videoID}/comments requests. A video with
// no comments yields an empty list, not an error.
func (h CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	comments, err := h.Views.VideoComments(ctx, r.PathValue("videoID"), listOptionsFromQuery(r))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"comments": comments})
}

// Add handles POST /api/v1/videos/{videoID}/comments requests.
func (h CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	comment, err := h.Comments.Add(ctx, CallerID(ctx), r.PathValue("videoID"), req.Content)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, commentResponse(comment))
}

// Update handles PATCH /api/v1/comments/{commentID} requests.
func (h CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	comment, err := h.Comments.Update(ctx, CallerID(ctx), r.PathValue("commentID"), req.Content)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, commentResponse(comment))
}

// Delete handles DELETE /api/v1/comments/{commentID} requests.
func (h CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Comments.Delete(ctx, CallerID(ctx), r.PathValue("commentID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]string{"status": "comment deleted"})
}

type commentRequest struct {
	Content string `json:"content"`
}

type commentPayload struct {
	ID        string `json:"id"`
	VideoID   string `json:"videoId"`
	OwnerID   string `json:"ownerId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

func commentResponse(comment models.Comment) commentPayload {
	return commentPayload{
		ID:        comment.ID,
		VideoID:   comment.VideoID,
		OwnerID:   comment.OwnerID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Format(timeFormat),
	}
}
