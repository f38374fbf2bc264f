package services

import (
	"context"

	"github.com/videotube/backend/internal/repositories"
)

// SubscriptionService toggles channel subscriptions.
type SubscriptionService struct {
	Subscriptions repositories.SubscriptionRepository
	Users         repositories.UserRepository
}

// Toggle flips the caller's subscription to a channel and reports the new
// state. The channel must exist, and a user may not subscribe to themselves.
func (s *SubscriptionService) Toggle(ctx context.Context, callerID, channelID string) (bool, error) {
	if channelID == "" {
		return false, validationErr("channel id is required")
	}
	if callerID == channelID {
		return false, validationErr("cannot subscribe to your own channel")
	}

	if _, err := s.Users.FindByID(ctx, channelID); err != nil {
		return false, err
	}

	return s.Subscriptions.Toggle(ctx, callerID, channelID)
}
