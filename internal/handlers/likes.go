package handlers

import "net/http"

// LikeHandler implements like toggles and the liked-videos listing.
type LikeHandler struct {
	Likes LikeToggler
	Views ViewComposer
}

// ToggleVideo handles POST /api/v1/likes/toggle/v/{videoID} requests.
func (h LikeHandler) ToggleVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	liked, err := h.Likes.ToggleVideo(ctx, CallerID(ctx), r.PathValue("videoID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]bool{"liked": liked})
}

// ToggleComment handles POST /api/v1/likes/toggle/c/{commentID} requests.
func (h LikeHandler) ToggleComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	liked, err := h.Likes.ToggleComment(ctx, CallerID(ctx), r.PathValue("commentID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]bool{"liked": liked})
}

// ToggleTweet handles POST /api/v1/likes/toggle/t/{tweetID} requests.
func (h LikeHandler) ToggleTweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	liked, err := h.Likes.ToggleTweet(ctx, CallerID(ctx), r.PathValue("tweetID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]bool{"liked": liked})
}

// LikedVideos handles GET /api/v1/likes/videos requests.
func (h LikeHandler) LikedVideos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	videos, err := h.Views.LikedVideos(ctx, CallerID(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"videos": videos})
}
