package handlers

import (
	"context"

	"github.com/videotube/backend/internal/models"
	"github.com/videotube/backend/internal/services"
	"github.com/videotube/backend/internal/views"
)

// UserStore captures the lookups required by the auth handlers.
type UserStore interface {
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

// SessionManager issues, refreshes, resolves, and revokes bearer tokens.
type SessionManager interface {
	Issue(ctx context.Context, userID string) (models.SessionTokens, error)
	Refresh(ctx context.Context, refreshToken string) (models.SessionTokens, error)
	Resolve(ctx context.Context, accessToken string) (string, error)
	Revoke(ctx context.Context, token string)
}

// AccountService captures account mutations behind the user handlers.
type AccountService interface {
	Register(ctx context.Context, in services.RegisterInput) (models.User, error)
	ChangePassword(ctx context.Context, callerID, oldPassword, newPassword string) error
	UpdateAccount(ctx context.Context, callerID, fullName, email string) error
	UpdateAvatar(ctx context.Context, callerID, avatarPath string) (string, error)
	UpdateCoverImage(ctx context.Context, callerID, coverImagePath string) (string, error)
}

// VideoManager captures video mutations and the fetch-with-increment read.
type VideoManager interface {
	Publish(ctx context.Context, callerID string, in services.PublishVideoInput) (models.Video, error)
	Get(ctx context.Context, callerID, videoID string) (views.VideoCard, error)
	Update(ctx context.Context, callerID, videoID string, in services.UpdateVideoInput) (models.Video, error)
	Delete(ctx context.Context, callerID, videoID string) error
	TogglePublish(ctx context.Context, callerID, videoID string) (bool, error)
}

// CommentManager captures comment mutations.
type CommentManager interface {
	Add(ctx context.Context, callerID, videoID, content string) (models.Comment, error)
	Update(ctx context.Context, callerID, commentID, content string) (models.Comment, error)
	Delete(ctx context.Context, callerID, commentID string) error
}

// TweetManager captures tweet mutations.
type TweetManager interface {
	Create(ctx context.Context, callerID, content string) (models.Tweet, error)
	Update(ctx context.Context, callerID, tweetID, content string) (models.Tweet, error)
	Delete(ctx context.Context, callerID, tweetID string) error
}

// LikeToggler flips likes on the three target kinds.
type LikeToggler interface {
	ToggleVideo(ctx context.Context, callerID, videoID string) (bool, error)
	ToggleComment(ctx context.Context, callerID, commentID string) (bool, error)
	ToggleTweet(ctx context.Context, callerID, tweetID string) (bool, error)
}

// SubscriptionToggler flips channel subscriptions.
type SubscriptionToggler interface {
	Toggle(ctx context.Context, callerID, channelID string) (bool, error)
}

// PlaylistManager captures playlist mutations and membership edits.
type PlaylistManager interface {
	Create(ctx context.Context, callerID, name, description string) (models.Playlist, error)
	Update(ctx context.Context, callerID, playlistID, name, description string) (models.Playlist, error)
	Delete(ctx context.Context, callerID, playlistID string) error
	AddVideo(ctx context.Context, callerID, playlistID, videoID string) error
	RemoveVideo(ctx context.Context, callerID, playlistID, videoID string) error
}

// ViewComposer produces the read-side denormalized views.
type ViewComposer interface {
	VideoFeed(ctx context.Context, opts views.ListOptions) ([]views.VideoCard, error)
	ChannelProfile(ctx context.Context, username, callerID string) (views.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID string) ([]views.HistoryEntry, error)
	PlaylistByID(ctx context.Context, id string) (views.PlaylistView, error)
	PlaylistsByOwner(ctx context.Context, ownerID string) ([]views.PlaylistView, error)
	UserTweets(ctx context.Context, userID string) ([]views.TweetCard, error)
	ChannelSubscribers(ctx context.Context, channelID string) ([]views.SubscriberEntry, error)
	SubscribedChannels(ctx context.Context, subscriberID string) ([]views.OwnerSummary, error)
	LikedVideos(ctx context.Context, userID string) ([]views.LikedVideo, error)
	VideoComments(ctx context.Context, videoID string, opts views.ListOptions) ([]views.CommentCard, error)
}

// Dependencies aggregates collaborators required by HTTP handlers.
type Dependencies struct {
	Users         UserStore
	Sessions      SessionManager
	Accounts      AccountService
	Videos        VideoManager
	Comments      CommentManager
	Tweets        TweetManager
	Likes         LikeToggler
	Subscriptions SubscriptionToggler
	Playlists     PlaylistManager
	Views         ViewComposer

	AuthLimiter   RateLimiter
	UploadLimiter RateLimiter

	UploadDir string
}
