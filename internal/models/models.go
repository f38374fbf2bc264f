package models

import "time"

// User represents an account on the VideoTube platform. Every user doubles
// as a channel that other users may subscribe to.
type User struct {
	ID            string
	Username      string
	Email         string
	FullName      string
	AvatarURL     string
	CoverImageURL string
	PasswordHash  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Video is an uploaded video owned by a user. The owner is immutable after
// creation.
type Video struct {
	ID           string
	OwnerID      string
	VideoURL     string
	ThumbnailURL string
	Title        string
	Description  string
	Duration     float64
	ViewCount    int64
	IsPublished  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Comment is a user comment attached to a video.
type Comment struct {
	ID        string
	VideoID   string
	OwnerID   string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tweet is a short standalone post owned by a user.
type Tweet struct {
	ID        string
	OwnerID   string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LikeTargetKind enumerates the entity kinds a like may point at.
type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

// LikeTarget identifies exactly one likeable entity. Representing the
// target as a tagged pair keeps the "exactly one target" invariant
// structural instead of relying on three nullable references.
type LikeTarget struct {
	Kind LikeTargetKind
	ID   string
}

// VideoTarget returns a like target pointing at a video.
func VideoTarget(id string) LikeTarget {
	return LikeTarget{Kind: LikeTargetVideo, ID: id}
}

// CommentTarget returns a like target pointing at a comment.
func CommentTarget(id string) LikeTarget {
	return LikeTarget{Kind: LikeTargetComment, ID: id}
}

// TweetTarget returns a like target pointing at a tweet.
func TweetTarget(id string) LikeTarget {
	return LikeTarget{Kind: LikeTargetTweet, ID: id}
}

// Like records that a user liked a target. A given (liker, target) pair is
// unique; toggling alternates between creating and deleting the row.
type Like struct {
	ID        string
	Target    LikeTarget
	LikedBy   string
	CreatedAt time.Time
}

// Subscription records that a subscriber follows a channel (another user).
// The (subscriber, channel) pair is unique.
type Subscription struct {
	ID           string
	SubscriberID string
	ChannelID    string
	CreatedAt    time.Time
}

// Playlist is an ordered, duplicate-tolerant sequence of video references
// owned by a user. Membership rows live in playlist_videos.
type Playlist struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	VideoIDs    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WatchEntry is one row of a user's watch history, most recent first.
// Repeat views append new entries rather than deduplicating.
type WatchEntry struct {
	UserID    string
	VideoID   string
	WatchedAt time.Time
}

// SessionTokens groups the bearer credentials issued to authenticated users.
type SessionTokens struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}
