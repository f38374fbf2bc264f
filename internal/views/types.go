package views

import (
	"strings"
	"time"
)

// OwnerSummary is the public projection of a user attached to composed
// views. It never carries credentials.
type OwnerSummary struct {
	FullName  string `json:"fullname"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar"`
}

// VideoCard is a video enriched with its owner projection and like count.
type VideoCard struct {
	ID           string       `json:"id"`
	VideoURL     string       `json:"videoFile"`
	ThumbnailURL string       `json:"thumbnail"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Duration     float64      `json:"duration"`
	Views        int64        `json:"views"`
	Owner        OwnerSummary `json:"owner"`
	LikeCount    int64        `json:"likeCount"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// ChannelProfile is the public view of a user as a channel.
type ChannelProfile struct {
	ID                        string    `json:"id"`
	Username                  string    `json:"username"`
	Email                     string    `json:"email"`
	FullName                  string    `json:"fullname"`
	AvatarURL                 string    `json:"avatar"`
	CoverImageURL             string    `json:"coverImage"`
	SubscribersCount          int64     `json:"subscribersCount"`
	ChannelsSubscribedToCount int64     `json:"channelsSubscribedToCount"`
	IsSubscribed              bool      `json:"isSubscribed"`
	CreatedAt                 time.Time `json:"createdAt"`
}

// HistoryEntry is one watched video in a user's history, most recent first.
type HistoryEntry struct {
	WatchedAt time.Time `json:"watchedAt"`
	Video     VideoCard `json:"video"`
}

// PlaylistVideo is the display projection of a video inside a playlist.
type PlaylistVideo struct {
	ID           string  `json:"id"`
	ThumbnailURL string  `json:"thumbnail"`
	VideoURL     string  `json:"videoFile"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Duration     float64 `json:"duration"`
	Views        int64   `json:"views"`
}

// PlaylistView is a playlist with its video references joined and projected.
type PlaylistView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Videos      []PlaylistVideo `json:"playlistVideo"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TweetCard is a tweet enriched with its owner projection and like count.
type TweetCard struct {
	ID        string       `json:"id"`
	Content   string       `json:"content"`
	Owner     OwnerSummary `json:"owner"`
	LikeCount int64        `json:"likeCount"`
	CreatedAt time.Time    `json:"createdAt"`
}

// SubscriberEntry wraps the subscriber projection of one subscription row.
type SubscriberEntry struct {
	Subscriber OwnerSummary `json:"subscriber"`
}

// LikedVideo is the flat, video-shaped record returned by the liked-videos
// view, augmented with the like count. The owner is flattened to the
// display name.
type LikedVideo struct {
	ID           string    `json:"id"`
	VideoURL     string    `json:"videoFile"`
	ThumbnailURL string    `json:"thumbnail"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	Owner        string    `json:"owner"`
	CreatedAt    time.Time `json:"createdAt"`
	Likes        int64     `json:"likes"`
}

// CommentCard is a comment enriched with a reduced owner projection and
// like count.
type CommentCard struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar"`
	LikeCount int64     `json:"likeCount"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ListOptions carries the pagination, sorting, and filter surface accepted
// by list-style views. Invalid or absent values fall back to defaults
// rather than erroring.
type ListOptions struct {
	Page     int
	Limit    int
	SortBy   string
	SortType string
	Query    string
	Creator  string
}

func (o ListOptions) normalized() ListOptions {
	if o.Page < 1 {
		o.Page = defaultPage
	}
	if o.Limit < 1 {
		o.Limit = defaultLimit
	}
	return o
}

// descending reports the requested sort direction; descending by recency is
// the default unless the caller asks for "asc".
func (o ListOptions) descending() bool {
	return !strings.EqualFold(strings.TrimSpace(o.SortType), "asc")
}
