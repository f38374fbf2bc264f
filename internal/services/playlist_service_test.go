package services

import (
	"context"
	"errors"
	"testing"

	"github.com/videotube/backend/internal/models"
	"github.com/videotube/backend/internal/repositories"
)

func newPlaylistService() (*PlaylistService, *fakePlaylistRepo, *fakeVideoRepo) {
	playlists := newFakePlaylistRepo()
	videos := newFakeVideoRepo()
	return &PlaylistService{Playlists: playlists, Videos: videos}, playlists, videos
}

func TestPlaylistCreateRequiresName(t *testing.T) {
	svc, _, _ := newPlaylistService()

	if _, err := svc.Create(context.Background(), "u-1", "  ", "desc"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaylistUpdateKeepsOmittedFields(t *testing.T) {
	svc, playlists, _ := newPlaylistService()
	playlists.playlists["p-1"] = models.Playlist{
		ID: "p-1", OwnerID: "u-1", Name: "orig", Description: "orig desc",
	}

	updated, err := svc.Update(context.Background(), "u-1", "p-1", "renamed", "")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "renamed" || updated.Description != "orig desc" {
		t.Fatalf("partial update wrong result: %+v", updated)
	}
}

func TestPlaylistUpdateRequiresAField(t *testing.T) {
	svc, playlists, _ := newPlaylistService()
	playlists.playlists["p-1"] = models.Playlist{ID: "p-1", OwnerID: "u-1"}

	if _, err := svc.Update(context.Background(), "u-1", "p-1", "", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaylistMutationsRejectNonOwner(t *testing.T) {
	svc, playlists, videos := newPlaylistService()
	playlists.playlists["p-1"] = models.Playlist{ID: "p-1", OwnerID: "owner-1"}
	videos.videos["vid-1"] = models.Video{ID: "vid-1"}

	if _, err := svc.Update(context.Background(), "intruder", "p-1", "x", ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden update, got %v", err)
	}
	if err := svc.Delete(context.Background(), "intruder", "p-1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden delete, got %v", err)
	}
	if err := svc.AddVideo(context.Background(), "intruder", "p-1", "vid-1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden add, got %v", err)
	}
}

func TestPlaylistAddVideoRequiresBothToExist(t *testing.T) {
	svc, playlists, videos := newPlaylistService()
	playlists.playlists["p-1"] = models.Playlist{ID: "p-1", OwnerID: "u-1"}
	videos.videos["vid-1"] = models.Video{ID: "vid-1"}

	if err := svc.AddVideo(context.Background(), "u-1", "p-1", "ghost"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected not found for missing video, got %v", err)
	}
	if err := svc.AddVideo(context.Background(), "u-1", "ghost", "vid-1"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected not found for missing playlist, got %v", err)
	}

	if err := svc.AddVideo(context.Background(), "u-1", "p-1", "vid-1"); err != nil {
		t.Fatalf("AddVideo returned error: %v", err)
	}
}

func TestPlaylistAddVideoAllowsRepeatedAppends(t *testing.T) {
	svc, playlists, videos := newPlaylistService()
	playlists.playlists["p-1"] = models.Playlist{ID: "p-1", OwnerID: "u-1"}
	videos.videos["vid-1"] = models.Video{ID: "vid-1"}

	if err := svc.AddVideo(context.Background(), "u-1", "p-1", "vid-1"); err != nil {
		t.Fatalf("first add returned error: %v", err)
	}
	if err := svc.AddVideo(context.Background(), "u-1", "p-1", "vid-1"); err != nil {
		t.Fatalf("second add of the same video returned error: %v", err)
	}

	stored, _ := playlists.FindByID(context.Background(), "p-1")
	if len(stored.VideoIDs) != 2 || stored.VideoIDs[0] != "vid-1" || stored.VideoIDs[1] != "vid-1" {
		t.Fatalf("expected two membership entries, got %v", stored.VideoIDs)
	}
}

func TestPlaylistRemoveAbsentVideoIsValidationError(t *testing.T) {
	svc, playlists, videos := newPlaylistService()
	playlists.playlists["p-1"] = models.Playlist{ID: "p-1", OwnerID: "u-1"}
	videos.videos["vid-1"] = models.Video{ID: "vid-1"}

	err := svc.RemoveVideo(context.Background(), "u-1", "p-1", "vid-1")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for absent membership, got %v", err)
	}
}

func TestPlaylistRemoveVideoSucceedsForMember(t *testing.T) {
	svc, playlists, videos := newPlaylistService()
	playlists.playlists["p-1"] = models.Playlist{ID: "p-1", OwnerID: "u-1", VideoIDs: []string{"vid-1"}}
	videos.videos["vid-1"] = models.Video{ID: "vid-1"}

	if err := svc.RemoveVideo(context.Background(), "u-1", "p-1", "vid-1"); err != nil {
		t.Fatalf("RemoveVideo returned error: %v", err)
	}

	stored, _ := playlists.FindByID(context.Background(), "p-1")
	if len(stored.VideoIDs) != 0 {
		t.Fatalf("membership not removed: %v", stored.VideoIDs)
	}
}
