package services

import (
	"context"

	"github.com/videotube/backend/internal/models"
	"github.com/videotube/backend/internal/repositories"
)

// LikeService toggles likes across the three target kinds. The toggle is
// atomic at the store, so repeated identical toggles alternate
// deterministically between liked and unliked.
type LikeService struct {
	Likes repositories.LikeRepository
}

// ToggleVideo flips the caller's like on a video and reports the new state.
func (s *LikeService) ToggleVideo(ctx context.Context, callerID, videoID string) (bool, error) {
	return s.toggle(ctx, models.VideoTarget(videoID), callerID)
}

// ToggleComment flips the caller's like on a comment.
func (s *LikeService) ToggleComment(ctx context.Context, callerID, commentID string) (bool, error) {
	return s.toggle(ctx, models.CommentTarget(commentID), callerID)
}

// ToggleTweet flips the caller's like on a tweet.
func (s *LikeService) ToggleTweet(ctx context.Context, callerID, tweetID string) (bool, error) {
	return s.toggle(ctx, models.TweetTarget(tweetID), callerID)
}

func (s *LikeService) toggle(ctx context.Context, target models.LikeTarget, callerID string) (bool, error) {
	if target.ID == "" {
		return false, validationErr("target id is required")
	}
	return s.Likes.Toggle(ctx, target, callerID)
}
