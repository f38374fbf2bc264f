package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestIssueStoresAccessAndRefreshTokens(t *testing.T) {
	store := NewInMemorySessionStore()
	manager := NewManager(15*time.Minute, 24*time.Hour, store)

	tokens, err := manager.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if tokens.AccessToken == tokens.RefreshToken {
		t.Fatal("access and refresh tokens must differ")
	}
	if !store.Has(tokens.AccessToken) || !store.Has(tokens.RefreshToken) {
		t.Fatal("issued tokens must be persisted")
	}
}

func TestResolveReturnsUserForAccessToken(t *testing.T) {
	manager := NewManager(15*time.Minute, 24*time.Hour, NewInMemorySessionStore())

	tokens, err := manager.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	userID, err := manager.Resolve(context.Background(), tokens.AccessToken)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("resolved wrong user %q", userID)
	}
}

func TestResolveRejectsRefreshToken(t *testing.T) {
	manager := NewManager(15*time.Minute, 24*time.Hour, NewInMemorySessionStore())

	tokens, err := manager.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := manager.Resolve(context.Background(), tokens.RefreshToken); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected session not found, got %v", err)
	}
}

func TestResolveExpiredTokenDeletesSession(t *testing.T) {
	store := NewInMemorySessionStore()
	manager := NewManager(-time.Minute, 24*time.Hour, store)

	tokens, err := manager.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := manager.Resolve(context.Background(), tokens.AccessToken); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected token expired, got %v", err)
	}
	if store.Has(tokens.AccessToken) {
		t.Fatal("expired access token must be deleted")
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	store := NewInMemorySessionStore()
	manager := NewManager(15*time.Minute, 24*time.Hour, store)

	original, err := manager.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	rotated, err := manager.Refresh(context.Background(), original.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	if rotated.RefreshToken == original.RefreshToken {
		t.Fatal("refresh must rotate the refresh token")
	}
	if store.Has(original.RefreshToken) {
		t.Fatal("spent refresh token must be deleted")
	}

	if _, err := manager.Refresh(context.Background(), original.RefreshToken); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("reusing a spent refresh token must fail, got %v", err)
	}
}

func TestRevokeRemovesToken(t *testing.T) {
	store := NewInMemorySessionStore()
	manager := NewManager(15*time.Minute, 24*time.Hour, store)

	tokens, err := manager.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	manager.Revoke(context.Background(), tokens.AccessToken)

	if _, err := manager.Resolve(context.Background(), tokens.AccessToken); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected session not found after revoke, got %v", err)
	}
}
