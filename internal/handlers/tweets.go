package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/videotube/backend/internal/models"
)

// TweetHandler implements the tweet listing and mutation endpoints.
type TweetHandler struct {
	Tweets TweetManager
	Views  ViewComposer
}

// ListForUser handles GET /api/v1/tweets/user/{userID} requests.
func (h TweetHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tweets, err := h.Views.UserTweets(ctx, r.PathValue("userID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"tweets": tweets})
}

// Create handles POST /api/v1/tweets requests.
func (h TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req tweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	tweet, err := h.Tweets.Create(ctx, CallerID(ctx), req.Content)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, tweetResponse(tweet))
}

// Update handles PATCH /api/v1/tweets/{tweetID} requests.
func (h TweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req tweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	tweet, err := h.Tweets.Update(ctx, CallerID(ctx), r.PathValue("tweetID"), req.Content)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, tweetResponse(tweet))
}

// Delete handles DELETE /api/v1/tweets/{tweetID} requests.
func (h TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Tweets.Delete(ctx, CallerID(ctx), r.PathValue("tweetID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]string{"status": "tweet deleted"})
}

type tweetRequest struct {
	Content string `json:"content"`
}

type tweetPayload struct {
	ID        string `json:"id"`
	OwnerID   string `json:"ownerId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

func tweetResponse(tweet models.Tweet) tweetPayload {
	return tweetPayload{
		ID:        tweet.ID,
		OwnerID:   tweet.OwnerID,
		Content:   tweet.Content,
		CreatedAt: tweet.CreatedAt.Format(timeFormat),
	}
}
