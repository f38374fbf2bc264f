package views

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/videotube/backend/internal/repositories"
)

// playlistPipeline joins playlists to their ordered video references and the
// referenced videos. Videos are left-joined so an empty playlist still
// produces a row for its own document.
func playlistPipeline() *pipeline {
	return newPipeline("playlists p").
		project(
			"p.id", "p.name", "p.description", "p.created_at",
			"v.id", "v.thumbnail_url", "v.video_url", "v.title", "v.description", "v.duration", "v.view_count",
		).
		leftJoin("playlist_videos pv ON pv.playlist_id = p.id").
		leftJoin("videos v ON v.id = pv.video_id")
}

// scanPlaylistRows groups the flattened playlist/video join back into
// PlaylistView documents, preserving both playlist order and the recorded
// video order.
func scanPlaylistRows(rows pgx.Rows) ([]PlaylistView, error) {
	var (
		ordered []string
		byID    = make(map[string]*PlaylistView)
	)

	for rows.Next() {
		var (
			view     PlaylistView
			videoID  sql.NullString
			video    PlaylistVideo
			duration sql.NullFloat64
			views    sql.NullInt64

			thumb, fileURL, title, description sql.NullString
		)
		err := rows.Scan(
			&view.ID, &view.Name, &view.Description, &view.CreatedAt,
			&videoID, &thumb, &fileURL, &title, &description, &duration, &views,
		)
		if err != nil {
			return nil, fmt.Errorf("scan playlist row: %w", err)
		}

		existing, ok := byID[view.ID]
		if !ok {
			view.Videos = []PlaylistVideo{}
			byID[view.ID] = &view
			ordered = append(ordered, view.ID)
			existing = &view
		}

		if videoID.Valid {
			video.ID = videoID.String
			video.ThumbnailURL = thumb.String
			video.VideoURL = fileURL.String
			video.Title = title.String
			video.Description = description.String
			video.Duration = duration.Float64
			video.Views = views.Int64
			existing.Videos = append(existing.Videos, video)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlist rows: %w", err)
	}

	result := make([]PlaylistView, 0, len(ordered))
	for _, id := range ordered {
		result = append(result, *byID[id])
	}
	return result, nil
}

// PlaylistByID composes a single playlist with its videos joined and
// projected to display fields.
func (c *Composer) PlaylistByID(ctx context.Context, id string) (PlaylistView, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return PlaylistView{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	query, args := playlistPipeline().
		match("p.id = ?", id).
		sort("pv.position", false).
		build()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return PlaylistView{}, fmt.Errorf("query playlist: %w", err)
	}
	defer rows.Close()

	playlists, err := scanPlaylistRows(rows)
	if err != nil {
		return PlaylistView{}, err
	}

	if len(playlists) == 0 {
		return PlaylistView{}, repositories.ErrNotFound
	}

	return playlists[0], nil
}

// PlaylistsByOwner lists a user's playlists newest first, each with its
// videos joined. Zero playlists is a success with an empty slice.
func (c *Composer) PlaylistsByOwner(ctx context.Context, ownerID string) ([]PlaylistView, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	query, args := playlistPipeline().
		match("p.owner_id = ?", ownerID).
		sort("p.created_at", true).
		sort("pv.position", false).
		build()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query playlists by owner: %w", err)
	}
	defer rows.Close()

	return scanPlaylistRows(rows)
}
