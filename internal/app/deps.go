package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/videotube/backend/internal/auth"
	"github.com/videotube/backend/internal/config"
	"github.com/videotube/backend/internal/db"
	"github.com/videotube/backend/internal/handlers"
	"github.com/videotube/backend/internal/media"
	"github.com/videotube/backend/internal/middleware"
	"github.com/videotube/backend/internal/repositories"
	"github.com/videotube/backend/internal/services"
	"github.com/videotube/backend/internal/storage"
	"github.com/videotube/backend/internal/views"
)

const (
	authLimiterRequests = 10
	authLimiterWindow   = time.Minute
	authLimiterBurst    = 5
	authLimiterTTL      = 10 * time.Minute

	uploadLimiterRequests = 6
	uploadLimiterWindow   = time.Minute
	uploadLimiterBurst    = 3
	uploadLimiterTTL      = 10 * time.Minute
)

// buildDependencies assembles the repository, service, and view collaborators
// behind the HTTP handlers. The returned shutdown func drains background
// workers and must be invoked after the server stops.
func buildDependencies(ctx context.Context, pool db.Pool, cfg config.Config, logger *slog.Logger) (handlers.Dependencies, func(context.Context) error, error) {
	userRepo := repositories.NewPostgresUserRepository(pool)
	videoRepo := repositories.NewPostgresVideoRepository(pool)
	commentRepo := repositories.NewPostgresCommentRepository(pool)
	tweetRepo := repositories.NewPostgresTweetRepository(pool)
	likeRepo := repositories.NewPostgresLikeRepository(pool)
	subscriptionRepo := repositories.NewPostgresSubscriptionRepository(pool)
	playlistRepo := repositories.NewPostgresPlaylistRepository(pool)

	sessions := auth.NewManager(cfg.AccessTokenTTL, cfg.RefreshTokenTTL, repositories.NewPostgresSessionStore(pool))
	composer := views.NewComposer(pool)

	mediaStore, err := storage.NewS3Store(ctx, cfg.ObjectStore)
	if err != nil {
		return handlers.Dependencies{}, nil, fmt.Errorf("configure media store: %w", err)
	}

	prober := media.NewFFProbeProber(cfg.FFProbePath, cfg.FFProbeTimeout)
	cleaner := media.NewCleaner(media.CleanerConfig{}, logger)

	accounts := &services.UserService{
		Users:   userRepo,
		Media:   mediaStore,
		Cleanup: cleaner,
	}
	videos := &services.VideoService{
		Videos:    videoRepo,
		Users:     userRepo,
		Comments:  commentRepo,
		Likes:     likeRepo,
		Playlists: playlistRepo,
		Media:     mediaStore,
		Prober:    prober,
		Cleanup:   cleaner,
		Cards:     composer,
	}
	comments := &services.CommentService{
		Comments: commentRepo,
		Videos:   videoRepo,
		Likes:    likeRepo,
	}
	tweets := &services.TweetService{Tweets: tweetRepo}
	likes := &services.LikeService{Likes: likeRepo}
	subscriptions := &services.SubscriptionService{
		Subscriptions: subscriptionRepo,
		Users:         userRepo,
	}
	playlists := &services.PlaylistService{
		Playlists: playlistRepo,
		Videos:    videoRepo,
	}

	deps := handlers.Dependencies{
		Users:         userRepo,
		Sessions:      sessions,
		Accounts:      accounts,
		Videos:        videos,
		Comments:      comments,
		Tweets:        tweets,
		Likes:         likes,
		Subscriptions: subscriptions,
		Playlists:     playlists,
		Views:         composer,
		AuthLimiter:   middleware.NewIPRateLimiter(authLimiterRequests, authLimiterWindow, authLimiterBurst, authLimiterTTL),
		UploadLimiter: middleware.NewIPRateLimiter(uploadLimiterRequests, uploadLimiterWindow, uploadLimiterBurst, uploadLimiterTTL),
		UploadDir:     cfg.UploadDir,
	}

	return deps, cleaner.Shutdown, nil
}
