package views

import (
	"context"
	"fmt"
)

// UserTweets lists a user's tweets with owner projection and like counts,
// newest first.
func (c *Composer) UserTweets(ctx context.Context, userID string) ([]TweetCard, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	query, args := newPipeline("tweets t").
		project(
			"t.id", "t.content", "t.created_at",
			"COALESCE(u.fullname, '')", "COALESCE(u.username, '')", "COALESCE(u.avatar_url, '')",
		).
		derive(likeCountExpr("tweet", "t.id"), "like_count").
		leftJoin("users u ON u.id = t.owner_id").
		match("t.owner_id = ?", userID).
		sort("t.created_at", true).
		build()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query user tweets: %w", err)
	}
	defer rows.Close()

	var cards []TweetCard
	for rows.Next() {
		var card TweetCard
		err := rows.Scan(
			&card.ID, &card.Content, &card.CreatedAt,
			&card.Owner.FullName, &card.Owner.Username, &card.Owner.AvatarURL,
			&card.LikeCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan tweet card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user tweets: %w", err)
	}

	return cards, nil
}

// ChannelSubscribers lists the subscribers of a channel, each projected to
// the public owner summary.
func (c *Composer) ChannelSubscribers(ctx context.Context, channelID string) ([]SubscriberEntry, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	query, args := newPipeline("subscriptions s").
		project("COALESCE(u.fullname, '')", "COALESCE(u.username, '')", "COALESCE(u.avatar_url, '')").
		leftJoin("users u ON u.id = s.subscriber_id").
		match("s.channel_id = ?", channelID).
		sort("s.created_at", true).
		build()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query channel subscribers: %w", err)
	}
	defer rows.Close()

	var entries []SubscriberEntry
	for rows.Next() {
		var entry SubscriberEntry
		if err := rows.Scan(&entry.Subscriber.FullName, &entry.Subscriber.Username, &entry.Subscriber.AvatarURL); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate channel subscribers: %w", err)
	}

	return entries, nil
}

// SubscribedChannels lists the channels a user subscribes to, reshaped to
// the joined user documents themselves rather than subscription wrappers.
// No subscriptions yields an empty slice.
func (c *Composer) SubscribedChannels(ctx context.Context, subscriberID string) ([]OwnerSummary, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	query, args := newPipeline("subscriptions s").
		project("COALESCE(u.fullname, '')", "COALESCE(u.username, '')", "COALESCE(u.avatar_url, '')").
		leftJoin("users u ON u.id = s.channel_id").
		match("s.subscriber_id = ?", subscriberID).
		sort("s.created_at", true).
		build()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query subscribed channels: %w", err)
	}
	defer rows.Close()

	var channels []OwnerSummary
	for rows.Next() {
		var channel OwnerSummary
		if err := rows.Scan(&channel.FullName, &channel.Username, &channel.AvatarURL); err != nil {
			return nil, fmt.Errorf("scan subscribed channel: %w", err)
		}
		channels = append(channels, channel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscribed channels: %w", err)
	}

	return channels, nil
}

// LikedVideos lists the videos a user has liked as flat video-shaped
// records augmented with the like count of each video.
func (c *Composer) LikedVideos(ctx context.Context, userID string) ([]LikedVideo, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	query, args := newPipeline("likes lk").
		project(
			"v.id", "v.video_url", "v.thumbnail_url", "v.title", "v.description",
			"v.duration", "v.view_count", "v.created_at",
			"COALESCE(u.fullname, '')",
		).
		derive(likeCountExpr("video", "v.id"), "likes").
		join("videos v ON v.id = lk.target_id").
		leftJoin("users u ON u.id = v.owner_id").
		match("lk.target_kind = 'video'").
		match("lk.liked_by = ?", userID).
		sort("lk.created_at", true).
		build()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query liked videos: %w", err)
	}
	defer rows.Close()

	var liked []LikedVideo
	for rows.Next() {
		var video LikedVideo
		err := rows.Scan(
			&video.ID, &video.VideoURL, &video.ThumbnailURL, &video.Title, &video.Description,
			&video.Duration, &video.Views, &video.CreatedAt,
			&video.Owner, &video.Likes,
		)
		if err != nil {
			return nil, fmt.Errorf("scan liked video: %w", err)
		}
		liked = append(liked, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate liked videos: %w", err)
	}

	return liked, nil
}

// VideoComments lists a video's comments with a reduced owner projection and
// like counts, newest first. Zero comments is a success with an empty list,
// consistent with the sibling views.
func (c *Composer) VideoComments(ctx context.Context, videoID string, opts ListOptions) ([]CommentCard, error) {
	opts = opts.normalized()

	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	query, args := newPipeline("comments cm").
		project(
			"cm.id", "cm.content", "cm.created_at",
			"COALESCE(u.username, '')", "COALESCE(u.avatar_url, '')",
		).
		derive(likeCountExpr("comment", "cm.id"), "like_count").
		leftJoin("users u ON u.id = cm.owner_id").
		match("cm.video_id = ?", videoID).
		sort("cm.created_at", true).
		paginate(opts.Page, opts.Limit).
		build()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query video comments: %w", err)
	}
	defer rows.Close()

	var cards []CommentCard
	for rows.Next() {
		var card CommentCard
		err := rows.Scan(
			&card.ID, &card.Content, &card.CreatedAt,
			&card.Username, &card.AvatarURL,
			&card.LikeCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan comment card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate video comments: %w", err)
	}

	return cards, nil
}
