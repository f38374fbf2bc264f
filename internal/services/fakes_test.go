package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/videotube/backend/internal/models"
	"github.com/videotube/backend/internal/repositories"
	"github.com/videotube/backend/internal/views"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[string]models.User
	watch   []models.WatchEntry
	fail    error
	history []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	for _, existing := range f.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return repositories.ErrConflict
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindByFullName(_ context.Context, fullName string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.FullName == fullName {
			return user, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (f *fakeUserRepo) UpdateDetails(_ context.Context, id, fullName, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	user.FullName = fullName
	user.Email = email
	f.users[id] = user
	return nil
}

func (f *fakeUserRepo) UpdateAvatar(_ context.Context, id, avatarURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	user.AvatarURL = avatarURL
	f.users[id] = user
	return nil
}

func (f *fakeUserRepo) UpdateCoverImage(_ context.Context, id, coverImageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	user.CoverImageURL = coverImageURL
	f.users[id] = user
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	user.PasswordHash = passwordHash
	f.users[id] = user
	return nil
}

func (f *fakeUserRepo) AppendWatchHistory(_ context.Context, entry models.WatchEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.watch = append(f.watch, entry)
	return nil
}

func (f *fakeUserRepo) DeleteWatchHistoryByVideo(_ context.Context, videoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.history = append(f.history, "purged:"+videoID)
	kept := f.watch[:0]
	for _, entry := range f.watch {
		if entry.VideoID != videoID {
			kept = append(kept, entry)
		}
	}
	f.watch = kept
	return nil
}

type fakeVideoRepo struct {
	mu     sync.Mutex
	videos map[string]models.Video
	fail   error
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{videos: make(map[string]models.Video)}
}

func (f *fakeVideoRepo) Create(_ context.Context, video models.Video) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.videos[video.ID] = video
	return nil
}

func (f *fakeVideoRepo) FindByID(_ context.Context, id string) (models.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	video, ok := f.videos[id]
	if !ok {
		return models.Video{}, repositories.ErrNotFound
	}
	return video, nil
}

func (f *fakeVideoRepo) Update(_ context.Context, video models.Video) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	if _, ok := f.videos[video.ID]; !ok {
		return repositories.ErrNotFound
	}
	f.videos[video.ID] = video
	return nil
}

func (f *fakeVideoRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.videos[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.videos, id)
	return nil
}

func (f *fakeVideoRepo) IncrementViewCount(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	video, ok := f.videos[id]
	if !ok {
		return repositories.ErrNotFound
	}
	video.ViewCount++
	f.videos[id] = video
	return nil
}

func (f *fakeVideoRepo) TogglePublish(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	video, ok := f.videos[id]
	if !ok {
		return false, repositories.ErrNotFound
	}
	video.IsPublished = !video.IsPublished
	f.videos[id] = video
	return video.IsPublished, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[string]models.Comment
	purged   []string
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]models.Comment)}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) FindByID(_ context.Context, id string) (models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	comment, ok := f.comments[id]
	if !ok {
		return models.Comment{}, repositories.ErrNotFound
	}
	return comment, nil
}

func (f *fakeCommentRepo) Update(_ context.Context, comment models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.comments[comment.ID]; !ok {
		return repositories.ErrNotFound
	}
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.comments[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentRepo) DeleteByVideo(_ context.Context, videoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.purged = append(f.purged, videoID)
	for id, comment := range f.comments {
		if comment.VideoID == videoID {
			delete(f.comments, id)
		}
	}
	return nil
}

type fakeTweetRepo struct {
	mu     sync.Mutex
	tweets map[string]models.Tweet
}

func newFakeTweetRepo() *fakeTweetRepo {
	return &fakeTweetRepo{tweets: make(map[string]models.Tweet)}
}

func (f *fakeTweetRepo) Create(_ context.Context, tweet models.Tweet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tweets[tweet.ID] = tweet
	return nil
}

func (f *fakeTweetRepo) FindByID(_ context.Context, id string) (models.Tweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tweet, ok := f.tweets[id]
	if !ok {
		return models.Tweet{}, repositories.ErrNotFound
	}
	return tweet, nil
}

func (f *fakeTweetRepo) Update(_ context.Context, tweet models.Tweet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tweets[tweet.ID]; !ok {
		return repositories.ErrNotFound
	}
	f.tweets[tweet.ID] = tweet
	return nil
}

func (f *fakeTweetRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tweets[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.tweets, id)
	return nil
}

func likeKey(target models.LikeTarget, likedBy string) string {
	return fmt.Sprintf("%s|%s|%s", target.Kind, target.ID, likedBy)
}

type fakeLikeRepo struct {
	mu             sync.Mutex
	likes          map[string]bool
	deletedTargets []models.LikeTarget
	purgedComments []string
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[string]bool)}
}

func (f *fakeLikeRepo) Toggle(_ context.Context, target models.LikeTarget, likedBy string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := likeKey(target, likedBy)
	if f.likes[key] {
		delete(f.likes, key)
		return false, nil
	}
	f.likes[key] = true
	return true, nil
}

func (f *fakeLikeRepo) DeleteByTarget(_ context.Context, target models.LikeTarget) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedTargets = append(f.deletedTargets, target)
	return nil
}

func (f *fakeLikeRepo) DeleteByCommentsOfVideo(_ context.Context, videoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.purgedComments = append(f.purgedComments, videoID)
	return nil
}

type fakeSubscriptionRepo struct {
	mu   sync.Mutex
	subs map[string]bool
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[string]bool)}
}

func (f *fakeSubscriptionRepo) Toggle(_ context.Context, subscriberID, channelID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := subscriberID + "|" + channelID
	if f.subs[key] {
		delete(f.subs, key)
		return false, nil
	}
	f.subs[key] = true
	return true, nil
}

type fakePlaylistRepo struct {
	mu        sync.Mutex
	playlists map[string]models.Playlist
	purged    []string
	removeErr error
}

func newFakePlaylistRepo() *fakePlaylistRepo {
	return &fakePlaylistRepo{playlists: make(map[string]models.Playlist)}
}

func (f *fakePlaylistRepo) Create(_ context.Context, playlist models.Playlist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playlists[playlist.ID] = playlist
	return nil
}

func (f *fakePlaylistRepo) FindByID(_ context.Context, id string) (models.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	playlist, ok := f.playlists[id]
	if !ok {
		return models.Playlist{}, repositories.ErrNotFound
	}
	return playlist, nil
}

func (f *fakePlaylistRepo) UpdateDetails(_ context.Context, id, name, description string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	playlist, ok := f.playlists[id]
	if !ok {
		return repositories.ErrNotFound
	}
	playlist.Name = name
	playlist.Description = description
	f.playlists[id] = playlist
	return nil
}

func (f *fakePlaylistRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.playlists[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.playlists, id)
	return nil
}

func (f *fakePlaylistRepo) AddVideo(_ context.Context, playlistID, videoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	playlist, ok := f.playlists[playlistID]
	if !ok {
		return repositories.ErrNotFound
	}
	playlist.VideoIDs = append(playlist.VideoIDs, videoID)
	f.playlists[playlistID] = playlist
	return nil
}

func (f *fakePlaylistRepo) RemoveVideo(_ context.Context, playlistID, videoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removeErr != nil {
		return f.removeErr
	}
	playlist, ok := f.playlists[playlistID]
	if !ok {
		return repositories.ErrNotFound
	}
	for i, id := range playlist.VideoIDs {
		if id == videoID {
			playlist.VideoIDs = append(playlist.VideoIDs[:i], playlist.VideoIDs[i+1:]...)
			f.playlists[playlistID] = playlist
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakePlaylistRepo) RemoveVideoFromAll(_ context.Context, videoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.purged = append(f.purged, videoID)
	for id, playlist := range f.playlists {
		for i, vid := range playlist.VideoIDs {
			if vid == videoID {
				playlist.VideoIDs = append(playlist.VideoIDs[:i], playlist.VideoIDs[i+1:]...)
				f.playlists[id] = playlist
				break
			}
		}
	}
	return nil
}

type fakeMediaStore struct {
	mu      sync.Mutex
	saved   []string
	deleted []string
	failOn  string
}

func newFakeMediaStore() *fakeMediaStore {
	return &fakeMediaStore{}
}

func (f *fakeMediaStore) Save(_ context.Context, key string, r io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn != "" && key == f.failOn {
		return "", fmt.Errorf("save %s: simulated outage", key)
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	url := "https://media.test/" + key
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeMediaStore) Delete(_ context.Context, location string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, location)
	return nil
}

type fakeProber struct {
	duration float64
	err      error
}

func (f fakeProber) Duration(_ context.Context, _ string) (float64, error) {
	return f.duration, f.err
}

type fakeCleaner struct {
	mu    sync.Mutex
	paths []string
}

func (f *fakeCleaner) Enqueue(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, path)
	return nil
}

type fakeCards struct {
	card views.VideoCard
	err  error
}

func (f fakeCards) VideoByID(_ context.Context, id string) (views.VideoCard, error) {
	if f.err != nil {
		return views.VideoCard{}, f.err
	}
	card := f.card
	card.ID = id
	return card, nil
}
