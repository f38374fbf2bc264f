package repositories

import (
	"context"

	"github.com/videotube/backend/internal/models"
)

// UserRepository defines the data access contract for users.
type UserRepository interface {
	Create(ctx context.Context, user models.User) error
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByFullName(ctx context.Context, fullName string) (models.User, error)
	UpdateDetails(ctx context.Context, id, fullName, email string) error
	UpdateAvatar(ctx context.Context, id, avatarURL string) error
	UpdateCoverImage(ctx context.Context, id, coverImageURL string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	AppendWatchHistory(ctx context.Context, entry models.WatchEntry) error
	DeleteWatchHistoryByVideo(ctx context.Context, videoID string) error
}

// VideoRepository defines the data access contract for videos.
type VideoRepository interface {
	Create(ctx context.Context, video models.Video) error
	FindByID(ctx context.Context, id string) (models.Video, error)
	Update(ctx context.Context, video models.Video) error
	Delete(ctx context.Context, id string) error
	IncrementViewCount(ctx context.Context, id string) error
	TogglePublish(ctx context.Context, id string) (bool, error)
}

// CommentRepository defines the data access contract for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment models.Comment) error
	FindByID(ctx context.Context, id string) (models.Comment, error)
	Update(ctx context.Context, comment models.Comment) error
	Delete(ctx context.Context, id string) error
	DeleteByVideo(ctx context.Context, videoID string) error
}

// TweetRepository defines the data access contract for tweets.
type TweetRepository interface {
	Create(ctx context.Context, tweet models.Tweet) error
	FindByID(ctx context.Context, id string) (models.Tweet, error)
	Update(ctx context.Context, tweet models.Tweet) error
	Delete(ctx context.Context, id string) error
}

// LikeRepository defines the data access contract for likes.
type LikeRepository interface {
	// Toggle atomically creates the (likedBy, target) like when absent and
	// deletes it when present. It reports whether the like exists after the
	// call.
	Toggle(ctx context.Context, target models.LikeTarget, likedBy string) (bool, error)
	DeleteByTarget(ctx context.Context, target models.LikeTarget) error
	DeleteByCommentsOfVideo(ctx context.Context, videoID string) error
}

// SubscriptionRepository defines the data access contract for subscriptions.
type SubscriptionRepository interface {
	// Toggle atomically subscribes when no (subscriber, channel) row exists
	// and unsubscribes when one does. It reports whether the subscription
	// exists after the call.
	Toggle(ctx context.Context, subscriberID, channelID string) (bool, error)
}

// PlaylistRepository defines the data access contract for playlists.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist models.Playlist) error
	FindByID(ctx context.Context, id string) (models.Playlist, error)
	UpdateDetails(ctx context.Context, id, name, description string) error
	Delete(ctx context.Context, id string) error
	AddVideo(ctx context.Context, playlistID, videoID string) error
	RemoveVideo(ctx context.Context, playlistID, videoID string) error
	RemoveVideoFromAll(ctx context.Context, videoID string) error
}
