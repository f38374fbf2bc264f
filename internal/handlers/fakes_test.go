package handlers

import (
	"context"
	"time"

	"github.com/videotube/backend/internal/models"
	"github.com/videotube/backend/internal/repositories"
	"github.com/videotube/backend/internal/services"
	"github.com/videotube/backend/internal/views"
)

type fakeUserStore struct {
	users map[string]models.User
}

func (f *fakeUserStore) find(match func(models.User) bool) (models.User, error) {
	for _, user := range f.users {
		if match(user) {
			return user, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	return f.find(func(u models.User) bool { return u.Email == email })
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (models.User, error) {
	return f.find(func(u models.User) bool { return u.Username == username })
}

type fakeSessions struct {
	tokens  map[string]string
	revoked []string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: make(map[string]string)}
}

func (f *fakeSessions) Issue(_ context.Context, userID string) (models.SessionTokens, error) {
	access := "access-" + userID
	refresh := "refresh-" + userID
	f.tokens[access] = userID
	now := time.Now().UTC()
	return models.SessionTokens{
		AccessToken:      access,
		AccessExpiresAt:  now.Add(15 * time.Minute),
		RefreshToken:     refresh,
		RefreshExpiresAt: now.Add(24 * time.Hour),
	}, nil
}

func (f *fakeSessions) Refresh(ctx context.Context, refreshToken string) (models.SessionTokens, error) {
	const prefix = "refresh-"
	if len(refreshToken) <= len(prefix) || refreshToken[:len(prefix)] != prefix {
		return models.SessionTokens{}, repositories.ErrNotFound
	}
	return f.Issue(ctx, refreshToken[len(prefix):])
}

func (f *fakeSessions) Resolve(_ context.Context, accessToken string) (string, error) {
	userID, ok := f.tokens[accessToken]
	if !ok {
		return "", repositories.ErrNotFound
	}
	return userID, nil
}

func (f *fakeSessions) Revoke(_ context.Context, token string) {
	f.revoked = append(f.revoked, token)
	delete(f.tokens, token)
}

type fakeLikes struct {
	lastCaller string
	lastTarget string
	state      bool
	err        error
}

func (f *fakeLikes) toggle(callerID, targetID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.lastCaller = callerID
	f.lastTarget = targetID
	f.state = !f.state
	return f.state, nil
}

func (f *fakeLikes) ToggleVideo(_ context.Context, callerID, videoID string) (bool, error) {
	return f.toggle(callerID, videoID)
}

func (f *fakeLikes) ToggleComment(_ context.Context, callerID, commentID string) (bool, error) {
	return f.toggle(callerID, commentID)
}

func (f *fakeLikes) ToggleTweet(_ context.Context, callerID, tweetID string) (bool, error) {
	return f.toggle(callerID, tweetID)
}

type fakeSubscriptions struct {
	err   error
	state bool
}

func (f *fakeSubscriptions) Toggle(_ context.Context, _, _ string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.state = !f.state
	return f.state, nil
}

type fakeVideoManager struct {
	card      views.VideoCard
	getCaller string
	getVideo  string
	err       error
}

func (f *fakeVideoManager) Publish(_ context.Context, callerID string, in services.PublishVideoInput) (models.Video, error) {
	if f.err != nil {
		return models.Video{}, f.err
	}
	return models.Video{ID: "vid-new", OwnerID: callerID, Title: in.Title, Description: in.Description, IsPublished: true}, nil
}

func (f *fakeVideoManager) Get(_ context.Context, callerID, videoID string) (views.VideoCard, error) {
	if f.err != nil {
		return views.VideoCard{}, f.err
	}
	f.getCaller = callerID
	f.getVideo = videoID
	card := f.card
	card.ID = videoID
	return card, nil
}

func (f *fakeVideoManager) Update(_ context.Context, callerID, videoID string, _ services.UpdateVideoInput) (models.Video, error) {
	if f.err != nil {
		return models.Video{}, f.err
	}
	return models.Video{ID: videoID, OwnerID: callerID}, nil
}

func (f *fakeVideoManager) Delete(_ context.Context, _, _ string) error {
	return f.err
}

func (f *fakeVideoManager) TogglePublish(_ context.Context, _, _ string) (bool, error) {
	return true, f.err
}

type fakeViewComposer struct {
	feed     []views.VideoCard
	profile  views.ChannelProfile
	comments []views.CommentCard
	err      error

	feedOpts views.ListOptions
}

func (f *fakeViewComposer) VideoFeed(_ context.Context, opts views.ListOptions) ([]views.VideoCard, error) {
	f.feedOpts = opts
	return f.feed, f.err
}

func (f *fakeViewComposer) ChannelProfile(_ context.Context, _, _ string) (views.ChannelProfile, error) {
	return f.profile, f.err
}

func (f *fakeViewComposer) WatchHistory(_ context.Context, _ string) ([]views.HistoryEntry, error) {
	return nil, f.err
}

func (f *fakeViewComposer) PlaylistByID(_ context.Context, _ string) (views.PlaylistView, error) {
	return views.PlaylistView{}, f.err
}

func (f *fakeViewComposer) PlaylistsByOwner(_ context.Context, _ string) ([]views.PlaylistView, error) {
	return nil, f.err
}

func (f *fakeViewComposer) UserTweets(_ context.Context, _ string) ([]views.TweetCard, error) {
	return nil, f.err
}

func (f *fakeViewComposer) ChannelSubscribers(_ context.Context, _ string) ([]views.SubscriberEntry, error) {
	return nil, f.err
}

func (f *fakeViewComposer) SubscribedChannels(_ context.Context, _ string) ([]views.OwnerSummary, error) {
	return nil, f.err
}

func (f *fakeViewComposer) LikedVideos(_ context.Context, _ string) ([]views.LikedVideo, error) {
	return nil, f.err
}

func (f *fakeViewComposer) VideoComments(_ context.Context, _ string, _ views.ListOptions) ([]views.CommentCard, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.comments == nil {
		return []views.CommentCard{}, nil
	}
	return f.comments, nil
}
