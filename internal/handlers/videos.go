package handlers

import (
	"net/http"
	"strconv"

	"github.com/videotube/backend/internal/logging"
	"github.com/videotube/backend/internal/models"
	"github.com/videotube/backend/internal/services"
	"github.com/videotube/backend/internal/views"
)

// VideoHandler implements the video feed, detail, and mutation endpoints.
type VideoHandler struct {
	Videos    VideoManager
	Views     ViewComposer
	Limiter   RateLimiter
	UploadDir string
}

// Feed handles GET /api/v1/videos requests.
func (h VideoHandler) Feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cards, err := h.Views.VideoFeed(ctx, listOptionsFromQuery(r))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"videos": cards})
}

// Publish handles POST /api/v1/videos multipart requests.
func (h VideoHandler) Publish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if !allowRequest(h.Limiter, r, "publish") {
		respondJSON(ctx, w, http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		logger.Warn("invalid publish form", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	videoPath, err := stageUpload(r, "videoFile", h.UploadDir)
	if err != nil {
		logger.Error("stage video upload", "error", err)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to read upload"})
		return
	}

	thumbnailPath, err := stageUpload(r, "thumbnail", h.UploadDir)
	if err != nil {
		logger.Error("stage thumbnail upload", "error", err)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to read upload"})
		return
	}

	video, err := h.Videos.Publish(ctx, CallerID(ctx), services.PublishVideoInput{
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, videoResponse(video))
}

// Get handles GET /api/v1/videos/{videoID} requests.
func (h VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	card, err := h.Videos.Get(ctx, CallerID(ctx), r.PathValue("videoID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"video": card})
}

// Update handles PATCH /api/v1/videos/{videoID} multipart requests.
func (h VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		logger.Warn("invalid update form", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	thumbnailPath, err := stageUpload(r, "thumbnail", h.UploadDir)
	if err != nil {
		logger.Error("stage thumbnail upload", "error", err)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to read upload"})
		return
	}

	in := services.UpdateVideoInput{ThumbnailPath: thumbnailPath}
	if values, ok := r.MultipartForm.Value["title"]; ok && len(values) > 0 {
		in.Title = &values[0]
	}
	if values, ok := r.MultipartForm.Value["description"]; ok && len(values) > 0 {
		in.Description = &values[0]
	}

	video, err := h.Videos.Update(ctx, CallerID(ctx), r.PathValue("videoID"), in)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, videoResponse(video))
}

// Delete handles DELETE /api/v1/videos/{videoID} requests.
func (h VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Videos.Delete(ctx, CallerID(ctx), r.PathValue("videoID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]string{"status": "video deleted"})
}

// TogglePublish handles PATCH /api/v1/videos/{videoID}/toggle-publish requests.
func (h VideoHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	published, err := h.Videos.TogglePublish(ctx, CallerID(ctx), r.PathValue("videoID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]bool{"isPublished": published})
}

func listOptionsFromQuery(r *http.Request) views.ListOptions {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	return views.ListOptions{
		Page:     page,
		Limit:    limit,
		SortBy:   q.Get("sortBy"),
		SortType: q.Get("sortType"),
		Query:    q.Get("query"),
		Creator:  q.Get("creator"),
	}
}

type videoPayload struct {
	ID           string  `json:"id"`
	OwnerID      string  `json:"ownerId"`
	VideoURL     string  `json:"videoFile"`
	ThumbnailURL string  `json:"thumbnail"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Duration     float64 `json:"duration"`
	ViewCount    int64   `json:"views"`
	IsPublished  bool    `json:"isPublished"`
	CreatedAt    string  `json:"createdAt"`
}

func videoResponse(video models.Video) videoPayload {
	return videoPayload{
		ID:           video.ID,
		OwnerID:      video.OwnerID,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
		Title:        video.Title,
		Description:  video.Description,
		Duration:     video.Duration,
		ViewCount:    video.ViewCount,
		IsPublished:  video.IsPublished,
		CreatedAt:    video.CreatedAt.Format(timeFormat),
	}
}
