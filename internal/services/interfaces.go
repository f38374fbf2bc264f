package services

import (
	"context"
	"io"

	"github.com/videotube/backend/internal/views"
)

// MediaStore is the object-storage collaborator for uploaded media. Save
// returns the stable public location of the stored object; Delete accepts
// either that location or the raw key.
type MediaStore interface {
	Save(ctx context.Context, key string, r io.Reader) (string, error)
	Delete(ctx context.Context, location string) error
}

// DurationProber derives the duration in seconds of an uploaded media file.
type DurationProber interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// TempFileCleaner schedules removal of local upload staging files.
type TempFileCleaner interface {
	Enqueue(ctx context.Context, path string) error
}

// VideoCardGetter composes the detail view returned after a video fetch.
type VideoCardGetter interface {
	VideoByID(ctx context.Context, id string) (views.VideoCard, error)
}
