package handlers

import "net/http"

// RegisterRoutes wires HTTP handlers into the provided ServeMux.
func RegisterRoutes(mux *http.ServeMux, deps Dependencies) {
	health := HealthHandler{}
	users := UserHandler{
		Users:     deps.Users,
		Accounts:  deps.Accounts,
		Sessions:  deps.Sessions,
		Views:     deps.Views,
		Limiter:   deps.AuthLimiter,
		UploadDir: deps.UploadDir,
	}
	channels := ChannelHandler{Views: deps.Views, Subscriptions: deps.Subscriptions}
	videos := VideoHandler{
		Videos:    deps.Videos,
		Views:     deps.Views,
		Limiter:   deps.UploadLimiter,
		UploadDir: deps.UploadDir,
	}
	comments := CommentHandler{Comments: deps.Comments, Views: deps.Views}
	tweets := TweetHandler{Tweets: deps.Tweets, Views: deps.Views}
	likes := LikeHandler{Likes: deps.Likes, Views: deps.Views}
	playlists := PlaylistHandler{Playlists: deps.Playlists, Views: deps.Views}

	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return requireAuth(deps.Sessions, next)
	}

	mux.HandleFunc("GET /healthz", health.Handle)

	mux.HandleFunc("POST /api/v1/users/register", users.Register)
	mux.HandleFunc("POST /api/v1/users/login", users.Login)
	mux.HandleFunc("POST /api/v1/users/logout", auth(users.Logout))
	mux.HandleFunc("POST /api/v1/users/refresh-token", users.Refresh)
	mux.HandleFunc("POST /api/v1/users/change-password", auth(users.ChangePassword))
	mux.HandleFunc("GET /api/v1/users/current-user", auth(users.CurrentUser))
	mux.HandleFunc("PATCH /api/v1/users/update-account", auth(users.UpdateAccount))
	mux.HandleFunc("PATCH /api/v1/users/avatar", auth(users.UpdateAvatar))
	mux.HandleFunc("PATCH /api/v1/users/cover-image", auth(users.UpdateCoverImage))
	mux.HandleFunc("GET /api/v1/users/history", auth(users.WatchHistory))

	mux.HandleFunc("GET /api/v1/channels/{username}", optionalAuth(deps.Sessions, channels.Profile))
	mux.HandleFunc("GET /api/v1/subscriptions/c/{channelID}", channels.Subscribers)
	mux.HandleFunc("POST /api/v1/subscriptions/c/{channelID}", auth(channels.ToggleSubscription))
	mux.HandleFunc("GET /api/v1/subscriptions/u/{subscriberID}", channels.SubscribedChannels)

	mux.HandleFunc("GET /api/v1/videos", videos.Feed)
	mux.HandleFunc("POST /api/v1/videos", auth(videos.Publish))
	mux.HandleFunc("GET /api/v1/videos/{videoID}", optionalAuth(deps.Sessions, videos.Get))
	mux.HandleFunc("PATCH /api/v1/videos/{videoID}", auth(videos.Update))
	mux.HandleFunc("DELETE /api/v1/videos/{videoID}", auth(videos.Delete))
	mux.HandleFunc("PATCH /api/v1/videos/{videoID}/toggle-publish", auth(videos.TogglePublish))

	mux.HandleFunc("GET /api/v1/videos/{videoID}/comments", comments.List)
	mux.HandleFunc("POST /api/v1/videos/{videoID}/comments", auth(comments.Add))
	mux.HandleFunc("PATCH /api/v1/comments/{commentID}", auth(comments.Update))
	mux.HandleFunc("DELETE /api/v1/comments/{commentID}", auth(comments.Delete))

	mux.HandleFunc("POST /api/v1/tweets", auth(tweets.Create))
	mux.HandleFunc("GET /api/v1/tweets/user/{userID}", tweets.ListForUser)
	mux.HandleFunc("PATCH /api/v1/tweets/{tweetID}", auth(tweets.Update))
	mux.HandleFunc("DELETE /api/v1/tweets/{tweetID}", auth(tweets.Delete))

	mux.HandleFunc("POST /api/v1/likes/toggle/v/{videoID}", auth(likes.ToggleVideo))
	mux.HandleFunc("POST /api/v1/likes/toggle/c/{commentID}", auth(likes.ToggleComment))
	mux.HandleFunc("POST /api/v1/likes/toggle/t/{tweetID}", auth(likes.ToggleTweet))
	mux.HandleFunc("GET /api/v1/likes/videos", auth(likes.LikedVideos))

	mux.HandleFunc("POST /api/v1/playlists", auth(playlists.Create))
	mux.HandleFunc("GET /api/v1/playlists/{playlistID}", playlists.Get)
	mux.HandleFunc("PATCH /api/v1/playlists/{playlistID}", auth(playlists.Update))
	mux.HandleFunc("DELETE /api/v1/playlists/{playlistID}", auth(playlists.Delete))
	mux.HandleFunc("GET /api/v1/playlists/user/{userID}", playlists.ListForUser)
	mux.HandleFunc("PATCH /api/v1/playlists/add/{videoID}/{playlistID}", auth(playlists.AddVideo))
	mux.HandleFunc("PATCH /api/v1/playlists/remove/{videoID}/{playlistID}", auth(playlists.RemoveVideo))
}
