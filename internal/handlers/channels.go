package handlers

import "net/http"

// ChannelHandler serves channel profiles and subscription listings.
type ChannelHandler struct {
	Views         ViewComposer
	Subscriptions SubscriptionToggler
}

// Profile handles GET /api/v1/channels/{username} requests. An
// authenticated caller additionally learns whether they are subscribed.
func (h ChannelHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.Views.ChannelProfile(ctx, r.PathValue("username"), CallerID(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"channel": profile})
}

// Subscribers handles GET /api/v1/subscriptions/c/{channelID} requests.
func (h ChannelHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subscribers, err := h.Views.ChannelSubscribers(ctx, r.PathValue("channelID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"subscribers": subscribers})
}

// SubscribedChannels handles GET /api/v1/subscriptions/u/{subscriberID} requests.
func (h ChannelHandler) SubscribedChannels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	channels, err := h.Views.SubscribedChannels(ctx, r.PathValue("subscriberID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"channels": channels})
}

// ToggleSubscription handles POST /api/v1/subscriptions/c/{channelID} requests.
func (h ChannelHandler) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subscribed, err := h.Subscriptions.Toggle(ctx, CallerID(ctx), r.PathValue("channelID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]bool{"subscribed": subscribed})
}
