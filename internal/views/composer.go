package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/videotube/backend/internal/db"
	"github.com/videotube/backend/internal/repositories"
)

// Composer builds read-only composed views over the entity store. Every
// view is a declarative pipeline (match, left join, derive, project, sort,
// paginate) executed as a single query; an empty result set is a success
// value, never an error.
type Composer struct {
	pool db.Pool
}

// NewComposer constructs a view composer over the provided pool.
func NewComposer(pool db.Pool) *Composer {
	return &Composer{pool: pool}
}

// likeCountExpr counts likes pointing at the given id column for one target
// kind. Missing likes count as zero.
func likeCountExpr(kind, idColumn string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM likes l WHERE l.target_kind = '%s' AND l.target_id = %s", kind, idColumn)
}

// projectVideoCard appends the shared owner-join + like-count column shape
// used by the feed, the detail view, and the history view. The pipeline must
// alias videos as v and users as u.
func projectVideoCard(p *pipeline) *pipeline {
	return p.
		project(
			"v.id", "v.video_url", "v.thumbnail_url", "v.title", "v.description",
			"v.duration", "v.view_count", "v.created_at",
			"COALESCE(u.fullname, '')", "COALESCE(u.username, '')", "COALESCE(u.avatar_url, '')",
		).
		derive(likeCountExpr("video", "v.id"), "like_count")
}

func videoCardPipeline() *pipeline {
	return projectVideoCard(newPipeline("videos v")).
		leftJoin("users u ON u.id = v.owner_id")
}

func scanVideoCard(row pgx.Row) (VideoCard, error) {
	var card VideoCard
	err := row.Scan(
		&card.ID, &card.VideoURL, &card.ThumbnailURL, &card.Title, &card.Description,
		&card.Duration, &card.Views, &card.CreatedAt,
		&card.Owner.FullName, &card.Owner.Username, &card.Owner.AvatarURL,
		&card.LikeCount,
	)
	return card, err
}

var feedSortColumns = map[string]string{
	"createdat":   "v.created_at",
	"created_at":  "v.created_at",
	"views":       "v.view_count",
	"view_count":  "v.view_count",
	"duration":    "v.duration",
	"title":       "v.title",
}

func feedSortColumn(sortBy string) string {
	if col, ok := feedSortColumns[strings.ToLower(strings.TrimSpace(sortBy))]; ok {
		return col
	}
	return "v.created_at"
}

// VideoFeed lists published videos with optional free-text and creator
// filters, owner projection, and like counts.
func (c *Composer) VideoFeed(ctx context.Context, opts ListOptions) ([]VideoCard, error) {
	opts = opts.normalized()

	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	p := videoCardPipeline().match("v.is_published")

	if q := strings.TrimSpace(opts.Query); q != "" {
		pattern := "%" + q + "%"
		p.match("(v.title ILIKE ? OR v.description ILIKE ?)", pattern, pattern)
	}

	if creator := strings.TrimSpace(opts.Creator); creator != "" {
		row := conn.QueryRow(ctx, `SELECT id FROM users WHERE fullname = $1`, creator)
		var ownerID string
		if err := row.Scan(&ownerID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, repositories.ErrNotFound
			}
			return nil, fmt.Errorf("resolve creator: %w", err)
		}
		p.match("v.owner_id = ?", ownerID)
	}

	p.sort(feedSortColumn(opts.SortBy), opts.descending()).paginate(opts.Page, opts.Limit)

	query, args := p.build()
	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query video feed: %w", err)
	}
	defer rows.Close()

	var cards []VideoCard
	for rows.Next() {
		card, err := scanVideoCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan video card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate video feed: %w", err)
	}

	return cards, nil
}

// VideoByID composes the detail view for a single video.
func (c *Composer) VideoByID(ctx context.Context, id string) (VideoCard, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return VideoCard{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	query, args := videoCardPipeline().match("v.id = ?", id).build()

	card, err := scanVideoCard(conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return VideoCard{}, repositories.ErrNotFound
		}
		return VideoCard{}, fmt.Errorf("select video card: %w", err)
	}

	return card, nil
}

// ChannelProfile composes the public channel view for a username, deriving
// subscriber counts and whether the caller is subscribed. An empty callerID
// yields isSubscribed = false.
func (c *Composer) ChannelProfile(ctx context.Context, username, callerID string) (ChannelProfile, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return ChannelProfile{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	query, args := newPipeline("users u").
		project("u.id", "u.username", "u.email", "u.fullname", "u.avatar_url", "u.cover_image_url", "u.created_at").
		derive("SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id", "subscribers_count").
		derive("SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.id", "subscribed_to_count").
		derive("SELECT EXISTS (SELECT 1 FROM subscriptions s WHERE s.channel_id = u.id AND s.subscriber_id = ?)", "is_subscribed", callerID).
		match("u.username = lower(?)", strings.TrimSpace(username)).
		build()

	var profile ChannelProfile
	err = conn.QueryRow(ctx, query, args...).Scan(
		&profile.ID, &profile.Username, &profile.Email, &profile.FullName,
		&profile.AvatarURL, &profile.CoverImageURL, &profile.CreatedAt,
		&profile.SubscribersCount, &profile.ChannelsSubscribedToCount, &profile.IsSubscribed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ChannelProfile{}, repositories.ErrNotFound
		}
		return ChannelProfile{}, fmt.Errorf("select channel profile: %w", err)
	}

	return profile, nil
}

// WatchHistory lists the caller's watched videos in recorded order (most
// recent first), each enriched with its owner projection. An empty history
// is an empty slice, not an error.
func (c *Composer) WatchHistory(ctx context.Context, userID string) ([]HistoryEntry, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	p := projectVideoCard(newPipeline("watch_history wh").project("wh.watched_at")).
		join("videos v ON v.id = wh.video_id").
		leftJoin("users u ON u.id = v.owner_id").
		match("wh.user_id = ?", userID).
		sort("wh.watched_at", true).
		sort("wh.id", true)

	query, args := p.build()
	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query watch history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		err := rows.Scan(
			&entry.WatchedAt,
			&entry.Video.ID, &entry.Video.VideoURL, &entry.Video.ThumbnailURL,
			&entry.Video.Title, &entry.Video.Description,
			&entry.Video.Duration, &entry.Video.Views, &entry.Video.CreatedAt,
			&entry.Video.Owner.FullName, &entry.Video.Owner.Username, &entry.Video.Owner.AvatarURL,
			&entry.Video.LikeCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan watch history entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate watch history: %w", err)
	}

	return entries, nil
}
