package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/videotube/backend/internal/models"
	"github.com/videotube/backend/internal/repositories"
)

// TweetService orchestrates tweet mutations.
type TweetService struct {
	Tweets  repositories.TweetRepository
	NowFunc func() time.Time
}

// Create posts a new tweet with non-blank content.
func (s *TweetService) Create(ctx context.Context, callerID, content string) (models.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Tweet{}, validationErr("tweet content is required")
	}

	now := s.now()
	tweet := models.Tweet{
		ID:        uuid.NewString(),
		OwnerID:   callerID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Tweets.Create(ctx, tweet); err != nil {
		return models.Tweet{}, err
	}

	return tweet, nil
}

// Update rewrites a tweet's content after an ownership check.
func (s *TweetService) Update(ctx context.Context, callerID, tweetID, content string) (models.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Tweet{}, validationErr("tweet content is required")
	}

	tweet, err := s.Tweets.FindByID(ctx, tweetID)
	if err != nil {
		return models.Tweet{}, err
	}

	if err := Authorize(tweet.OwnerID, callerID); err != nil {
		return models.Tweet{}, err
	}

	tweet.Content = content
	tweet.UpdatedAt = s.now()

	if err := s.Tweets.Update(ctx, tweet); err != nil {
		return models.Tweet{}, err
	}

	return tweet, nil
}

// Delete removes a tweet after an ownership check.
func (s *TweetService) Delete(ctx context.Context, callerID, tweetID string) error {
	tweet, err := s.Tweets.FindByID(ctx, tweetID)
	if err != nil {
		return err
	}

	if err := Authorize(tweet.OwnerID, callerID); err != nil {
		return err
	}

	return s.Tweets.Delete(ctx, tweetID)
}

func (s *TweetService) now() time.Time {
	if s.NowFunc != nil {
		return s.NowFunc()
	}
	return time.Now().UTC()
}
