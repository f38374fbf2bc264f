package services

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/videotube/backend/internal/logging"
	"github.com/videotube/backend/internal/models"
	"github.com/videotube/backend/internal/repositories"
	"github.com/videotube/backend/internal/views"
)

// VideoService orchestrates video mutations: publish, fetch-with-increment,
// partial update, cascade delete, and publish toggling.
type VideoService struct {
	Videos    repositories.VideoRepository
	Users     repositories.UserRepository
	Comments  repositories.CommentRepository
	Likes     repositories.LikeRepository
	Playlists repositories.PlaylistRepository
	Media     MediaStore
	Prober    DurationProber
	Cleanup   TempFileCleaner
	Cards     VideoCardGetter
	NowFunc   func() time.Time
}

// PublishVideoInput carries the fields and staged upload paths for a new video.
type PublishVideoInput struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// Publish validates the input, uploads the staged media, probes the
// duration, and creates the video. Any failure after an upload triggers
// compensating deletes so no orphaned objects remain.
func (s *VideoService) Publish(ctx context.Context, callerID string, in PublishVideoInput) (models.Video, error) {
	defer s.discard(ctx, in.VideoPath, in.ThumbnailPath)

	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return models.Video{}, validationErr("title and description are required")
	}
	if in.VideoPath == "" || in.ThumbnailPath == "" {
		return models.Video{}, validationErr("video file and thumbnail are required")
	}

	duration, err := s.Prober.Duration(ctx, in.VideoPath)
	if err != nil {
		return models.Video{}, dependencyErr("probe video duration", err)
	}

	id := uuid.NewString()

	videoURL, err := s.upload(ctx, path.Join("videos", id, "video"+filepath.Ext(in.VideoPath)), in.VideoPath)
	if err != nil {
		return models.Video{}, dependencyErr("upload video file", err)
	}

	thumbnailURL, err := s.upload(ctx, path.Join("videos", id, "thumbnail"+filepath.Ext(in.ThumbnailPath)), in.ThumbnailPath)
	if err != nil {
		s.deleteMedia(ctx, videoURL)
		return models.Video{}, dependencyErr("upload thumbnail", err)
	}

	now := s.now()
	video := models.Video{
		ID:           id,
		OwnerID:      callerID,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Duration:     duration,
		IsPublished:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Videos.Create(ctx, video); err != nil {
		s.deleteMedia(ctx, videoURL)
		s.deleteMedia(ctx, thumbnailURL)
		return models.Video{}, fmt.Errorf("create video: %w", err)
	}

	return video, nil
}

// Get composes the detail view for a video. The view counter is bumped
// atomically before the read so concurrent fetches never skip an increment,
// and the returned card reflects the bump. When a caller is known the fetch
// is appended to their watch history.
func (s *VideoService) Get(ctx context.Context, callerID, videoID string) (views.VideoCard, error) {
	if err := s.Videos.IncrementViewCount(ctx, videoID); err != nil {
		return views.VideoCard{}, err
	}

	card, err := s.Cards.VideoByID(ctx, videoID)
	if err != nil {
		return views.VideoCard{}, err
	}

	if callerID != "" {
		entry := models.WatchEntry{UserID: callerID, VideoID: videoID, WatchedAt: s.now()}
		if err := s.Users.AppendWatchHistory(ctx, entry); err != nil {
			logging.FromContext(ctx).Warn("append watch history", "videoId", videoID, "error", err)
		}
	}

	return card, nil
}

// UpdateVideoInput carries a partial update; nil fields are left unchanged.
type UpdateVideoInput struct {
	Title         *string
	Description   *string
	ThumbnailPath string
}

// Update applies a partial update to a video's title, description, or
// thumbnail. At least one field must be present.
func (s *VideoService) Update(ctx context.Context, callerID, videoID string, in UpdateVideoInput) (models.Video, error) {
	defer s.discard(ctx, in.ThumbnailPath)

	if in.Title == nil && in.Description == nil && in.ThumbnailPath == "" {
		return models.Video{}, validationErr("at least one of title, description, or thumbnail is required")
	}

	video, err := s.Videos.FindByID(ctx, videoID)
	if err != nil {
		return models.Video{}, err
	}

	if err := Authorize(video.OwnerID, callerID); err != nil {
		return models.Video{}, err
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return models.Video{}, validationErr("title must not be blank")
		}
		video.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return models.Video{}, validationErr("description must not be blank")
		}
		video.Description = strings.TrimSpace(*in.Description)
	}

	oldThumbnail := ""
	if in.ThumbnailPath != "" {
		url, err := s.upload(ctx, path.Join("videos", video.ID, "thumbnail"+filepath.Ext(in.ThumbnailPath)), in.ThumbnailPath)
		if err != nil {
			return models.Video{}, dependencyErr("upload thumbnail", err)
		}
		oldThumbnail = video.ThumbnailURL
		video.ThumbnailURL = url
	}

	video.UpdatedAt = s.now()

	if err := s.Videos.Update(ctx, video); err != nil {
		if in.ThumbnailPath != "" {
			s.deleteMedia(ctx, video.ThumbnailURL)
		}
		return models.Video{}, err
	}

	if oldThumbnail != "" && oldThumbnail != video.ThumbnailURL {
		s.deleteMedia(ctx, oldThumbnail)
	}

	return video, nil
}

// Delete removes a video together with its comments, the likes on the video
// and on its comments, playlist memberships, watch history, and the stored
// media objects. Dependents are fanned out concurrently and every branch is
// attempted; the first branch failure is surfaced. The video row still
// carries the dependents' foreign keys, so it is deleted last, after all
// branches succeed.
func (s *VideoService) Delete(ctx context.Context, callerID, videoID string) error {
	video, err := s.Videos.FindByID(ctx, videoID)
	if err != nil {
		return err
	}

	if err := Authorize(video.OwnerID, callerID); err != nil {
		return err
	}

	ctx, span := logging.StartSpan(ctx, "video.cascade_delete")
	defer span.End()

	var g errgroup.Group
	g.Go(func() error {
		return s.Likes.DeleteByTarget(ctx, models.VideoTarget(videoID))
	})
	g.Go(func() error {
		// Comment likes go first so the comment subquery still sees its rows.
		if err := s.Likes.DeleteByCommentsOfVideo(ctx, videoID); err != nil {
			return err
		}
		return s.Comments.DeleteByVideo(ctx, videoID)
	})
	g.Go(func() error {
		return s.Playlists.RemoveVideoFromAll(ctx, videoID)
	})
	g.Go(func() error {
		return s.Users.DeleteWatchHistoryByVideo(ctx, videoID)
	})
	g.Go(func() error {
		if err := s.Media.Delete(ctx, video.VideoURL); err != nil {
			return dependencyErr("delete video object", err)
		}
		if err := s.Media.Delete(ctx, video.ThumbnailURL); err != nil {
			return dependencyErr("delete thumbnail object", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("cascade delete video %s: %w", videoID, err)
	}

	return s.Videos.Delete(ctx, videoID)
}

// TogglePublish flips the published flag after an ownership check and
// reports the new state.
func (s *VideoService) TogglePublish(ctx context.Context, callerID, videoID string) (bool, error) {
	video, err := s.Videos.FindByID(ctx, videoID)
	if err != nil {
		return false, err
	}

	if err := Authorize(video.OwnerID, callerID); err != nil {
		return false, err
	}

	return s.Videos.TogglePublish(ctx, videoID)
}

func (s *VideoService) upload(ctx context.Context, key, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return s.Media.Save(ctx, key, f)
}

func (s *VideoService) deleteMedia(ctx context.Context, location string) {
	if location == "" {
		return
	}
	if err := s.Media.Delete(ctx, location); err != nil {
		logging.FromContext(ctx).Error("compensating media delete failed", "location", location, "error", err)
	}
}

func (s *VideoService) discard(ctx context.Context, paths ...string) {
	if s.Cleanup == nil {
		return
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := s.Cleanup.Enqueue(ctx, p); err != nil {
			logging.FromContext(ctx).Warn("schedule upload cleanup", "path", p, "error", err)
		}
	}
}

func (s *VideoService) now() time.Time {
	if s.NowFunc != nil {
		return s.NowFunc()
	}
	return time.Now().UTC()
}
