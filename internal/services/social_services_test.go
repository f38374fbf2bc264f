package services

import (
	"context"
	"errors"
	"testing"

	"github.com/videotube/backend/internal/models"
	"github.com/videotube/backend/internal/repositories"
)

func TestLikeToggleAlternatesDeterministically(t *testing.T) {
	svc := &LikeService{Likes: newFakeLikeRepo()}

	for i, want := range []bool{true, false, true, false} {
		got, err := svc.ToggleVideo(context.Background(), "u-1", "vid-1")
		if err != nil {
			t.Fatalf("toggle %d returned error: %v", i, err)
		}
		if got != want {
			t.Fatalf("toggle %d: got %v want %v", i, got, want)
		}
	}
}

func TestLikeTogglesAreIndependentPerTargetKind(t *testing.T) {
	likes := newFakeLikeRepo()
	svc := &LikeService{Likes: likes}

	if _, err := svc.ToggleVideo(context.Background(), "u-1", "same-id"); err != nil {
		t.Fatal(err)
	}
	liked, err := svc.ToggleComment(context.Background(), "u-1", "same-id")
	if err != nil {
		t.Fatal(err)
	}
	if !liked {
		t.Fatal("comment toggle must not observe the video like")
	}
}

func TestLikeToggleRequiresTargetID(t *testing.T) {
	svc := &LikeService{Likes: newFakeLikeRepo()}

	if _, err := svc.ToggleTweet(context.Background(), "u-1", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubscriptionToggleAlternates(t *testing.T) {
	users := newFakeUserRepo()
	users.users["chan-1"] = models.User{ID: "chan-1"}
	svc := &SubscriptionService{Subscriptions: newFakeSubscriptionRepo(), Users: users}

	subscribed, err := svc.Toggle(context.Background(), "u-1", "chan-1")
	if err != nil || !subscribed {
		t.Fatalf("expected subscribed, got %v err %v", subscribed, err)
	}

	subscribed, err = svc.Toggle(context.Background(), "u-1", "chan-1")
	if err != nil || subscribed {
		t.Fatalf("expected unsubscribed, got %v err %v", subscribed, err)
	}
}

func TestSubscriptionToggleRejectsSelfSubscribe(t *testing.T) {
	users := newFakeUserRepo()
	users.users["u-1"] = models.User{ID: "u-1"}
	svc := &SubscriptionService{Subscriptions: newFakeSubscriptionRepo(), Users: users}

	_, err := svc.Toggle(context.Background(), "u-1", "u-1")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubscriptionToggleUnknownChannelIsNotFound(t *testing.T) {
	svc := &SubscriptionService{Subscriptions: newFakeSubscriptionRepo(), Users: newFakeUserRepo()}

	_, err := svc.Toggle(context.Background(), "u-1", "ghost")
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCommentAddRequiresExistingVideo(t *testing.T) {
	svc := &CommentService{
		Comments: newFakeCommentRepo(),
		Videos:   newFakeVideoRepo(),
		Likes:    newFakeLikeRepo(),
	}

	_, err := svc.Add(context.Background(), "u-1", "ghost", "nice video")
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCommentAddRejectsBlankContent(t *testing.T) {
	videos := newFakeVideoRepo()
	videos.videos["vid-1"] = models.Video{ID: "vid-1"}
	svc := &CommentService{Comments: newFakeCommentRepo(), Videos: videos, Likes: newFakeLikeRepo()}

	_, err := svc.Add(context.Background(), "u-1", "vid-1", "   ")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCommentUpdateRejectsNonOwner(t *testing.T) {
	comments := newFakeCommentRepo()
	comments.comments["c-1"] = models.Comment{ID: "c-1", OwnerID: "owner-1", Content: "orig"}
	svc := &CommentService{Comments: comments, Videos: newFakeVideoRepo(), Likes: newFakeLikeRepo()}

	_, err := svc.Update(context.Background(), "intruder", "c-1", "edited")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	stored, _ := comments.FindByID(context.Background(), "c-1")
	if stored.Content != "orig" {
		t.Fatal("denied update must not mutate")
	}
}

func TestCommentDeleteCascadesItsLikes(t *testing.T) {
	comments := newFakeCommentRepo()
	comments.comments["c-1"] = models.Comment{ID: "c-1", OwnerID: "owner-1"}
	likes := newFakeLikeRepo()
	svc := &CommentService{Comments: comments, Videos: newFakeVideoRepo(), Likes: likes}

	if err := svc.Delete(context.Background(), "owner-1", "c-1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if len(likes.deletedTargets) != 1 || likes.deletedTargets[0] != models.CommentTarget("c-1") {
		t.Fatalf("comment likes not purged: %v", likes.deletedTargets)
	}
	if _, err := comments.FindByID(context.Background(), "c-1"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatal("comment row must be gone")
	}
}

func TestTweetLifecycleEnforcesOwnership(t *testing.T) {
	tweets := newFakeTweetRepo()
	svc := &TweetService{Tweets: tweets}

	tweet, err := svc.Create(context.Background(), "u-1", "hello world")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Update(context.Background(), "intruder", tweet.ID, "hijack"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden update, got %v", err)
	}
	if err := svc.Delete(context.Background(), "intruder", tweet.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden delete, got %v", err)
	}

	if err := svc.Delete(context.Background(), "u-1", tweet.ID); err != nil {
		t.Fatalf("owner delete returned error: %v", err)
	}
}

func TestTweetCreateRejectsBlankContent(t *testing.T) {
	svc := &TweetService{Tweets: newFakeTweetRepo()}

	if _, err := svc.Create(context.Background(), "u-1", "  "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
