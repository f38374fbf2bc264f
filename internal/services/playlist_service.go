package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/videotube/backend/internal/models"
	"github.com/videotube/backend/internal/repositories"
)

// PlaylistService orchestrates playlist mutations and membership edits.
type PlaylistService struct {
	Playlists repositories.PlaylistRepository
	Videos    repositories.VideoRepository
	NowFunc   func() time.Time
}

// Create makes a new, empty playlist. The name is required.
func (s *PlaylistService) Create(ctx context.Context, callerID, name, description string) (models.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Playlist{}, validationErr("playlist name is required")
	}

	now := s.now()
	playlist := models.Playlist{
		ID:          uuid.NewString(),
		OwnerID:     callerID,
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Playlists.Create(ctx, playlist); err != nil {
		return models.Playlist{}, err
	}

	return playlist, nil
}

// Update rewrites a playlist's name and/or description after an ownership
// check. At least one field must be provided; an omitted field keeps its
// current value.
func (s *PlaylistService) Update(ctx context.Context, callerID, playlistID, name, description string) (models.Playlist, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" && description == "" {
		return models.Playlist{}, validationErr("at least one of name or description is required")
	}

	playlist, err := s.Playlists.FindByID(ctx, playlistID)
	if err != nil {
		return models.Playlist{}, err
	}

	if err := Authorize(playlist.OwnerID, callerID); err != nil {
		return models.Playlist{}, err
	}

	if name != "" {
		playlist.Name = name
	}
	if description != "" {
		playlist.Description = description
	}

	if err := s.Playlists.UpdateDetails(ctx, playlistID, playlist.Name, playlist.Description); err != nil {
		return models.Playlist{}, err
	}

	playlist.UpdatedAt = s.now()
	return playlist, nil
}

// Delete removes a playlist and its membership rows after an ownership check.
func (s *PlaylistService) Delete(ctx context.Context, callerID, playlistID string) error {
	playlist, err := s.Playlists.FindByID(ctx, playlistID)
	if err != nil {
		return err
	}

	if err := Authorize(playlist.OwnerID, callerID); err != nil {
		return err
	}

	return s.Playlists.Delete(ctx, playlistID)
}

// AddVideo appends a video to the playlist. Both must exist and the caller
// must own the playlist.
func (s *PlaylistService) AddVideo(ctx context.Context, callerID, playlistID, videoID string) error {
	if _, err := s.Videos.FindByID(ctx, videoID); err != nil {
		return err
	}

	playlist, err := s.Playlists.FindByID(ctx, playlistID)
	if err != nil {
		return err
	}

	if err := Authorize(playlist.OwnerID, callerID); err != nil {
		return err
	}

	return s.Playlists.AddVideo(ctx, playlistID, videoID)
}

// RemoveVideo removes a video from the playlist. Removing a video that is
// not in the playlist is a validation error, not a silent no-op.
func (s *PlaylistService) RemoveVideo(ctx context.Context, callerID, playlistID, videoID string) error {
	if _, err := s.Videos.FindByID(ctx, videoID); err != nil {
		return err
	}

	playlist, err := s.Playlists.FindByID(ctx, playlistID)
	if err != nil {
		return err
	}

	if err := Authorize(playlist.OwnerID, callerID); err != nil {
		return err
	}

	if err := s.Playlists.RemoveVideo(ctx, playlistID, videoID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: video not found in playlist", ErrValidation)
		}
		return err
	}

	return nil
}

func (s *PlaylistService) now() time.Time {
	if s.NowFunc != nil {
		return s.NowFunc()
	}
	return time.Now().UTC()
}
