package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/videotube/backend/internal/models"
	"github.com/videotube/backend/internal/repositories"
)

// CommentService orchestrates comment mutations.
type CommentService struct {
	Comments repositories.CommentRepository
	Videos   repositories.VideoRepository
	Likes    repositories.LikeRepository
	NowFunc  func() time.Time
}

// Add posts a comment on a video. The video must exist and the content must
// be non-blank.
func (s *CommentService) Add(ctx context.Context, callerID, videoID, content string) (models.Comment, error) {
	if _, err := s.Videos.FindByID(ctx, videoID); err != nil {
		return models.Comment{}, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return models.Comment{}, validationErr("comment content is required")
	}

	now := s.now()
	comment := models.Comment{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		OwnerID:   callerID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Comments.Create(ctx, comment); err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

// Update rewrites a comment's content after an ownership check.
func (s *CommentService) Update(ctx context.Context, callerID, commentID, content string) (models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Comment{}, validationErr("comment content is required")
	}

	comment, err := s.Comments.FindByID(ctx, commentID)
	if err != nil {
		return models.Comment{}, err
	}

	if err := Authorize(comment.OwnerID, callerID); err != nil {
		return models.Comment{}, err
	}

	comment.Content = content
	comment.UpdatedAt = s.now()

	if err := s.Comments.Update(ctx, comment); err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

// Delete removes a comment after an ownership check, cascading the likes
// that target it.
func (s *CommentService) Delete(ctx context.Context, callerID, commentID string) error {
	comment, err := s.Comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}

	if err := Authorize(comment.OwnerID, callerID); err != nil {
		return err
	}

	if err := s.Likes.DeleteByTarget(ctx, models.CommentTarget(commentID)); err != nil {
		return err
	}

	return s.Comments.Delete(ctx, commentID)
}

func (s *CommentService) now() time.Time {
	if s.NowFunc != nil {
		return s.NowFunc()
	}
	return time.Now().UTC()
}
