package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/videotube/backend/internal/logging"
	"github.com/videotube/backend/internal/models"
	"github.com/videotube/backend/internal/repositories"
	"github.com/videotube/backend/internal/services"
)

// UserHandler implements registration, authentication, and account endpoints.
type UserHandler struct {
	Users     UserStore
	Accounts  AccountService
	Sessions  SessionManager
	Views     ViewComposer
	Limiter   RateLimiter
	UploadDir string
}

// Register handles POST /api/v1/users/register multipart requests.
func (h UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if !allowRequest(h.Limiter, r, "register") {
		respondJSON(ctx, w, http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		logger.Warn("invalid registration form", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	avatarPath, err := stageUpload(r, "avatar", h.UploadDir)
	if err != nil {
		logger.Error("stage avatar upload", "error", err)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to read upload"})
		return
	}

	coverPath, err := stageUpload(r, "coverImage", h.UploadDir)
	if err != nil {
		logger.Error("stage cover image upload", "error", err)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to read upload"})
		return
	}

	user, err := h.Accounts.Register(ctx, services.RegisterInput{
		Username:       r.FormValue("username"),
		Email:          r.FormValue("email"),
		FullName:       r.FormValue("fullname"),
		Password:       r.FormValue("password"),
		AvatarPath:     avatarPath,
		CoverImagePath: coverPath,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, userResponse(user))
}

// Login handles POST /api/v1/users/login requests. Either the username or
// the email identifies the account.
func (h UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if !allowRequest(h.Limiter, r, "login") {
		respondJSON(ctx, w, http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid login payload", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	req.Username = strings.TrimSpace(strings.ToLower(req.Username))
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if (req.Username == "" && req.Email == "") || req.Password == "" {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "username or email and password are required"})
		return
	}

	var (
		user models.User
		err  error
	)
	if req.Username != "" {
		user, err = h.Users.FindByUsername(ctx, req.Username)
	} else {
		user, err = h.Users.FindByEmail(ctx, req.Email)
	}
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.Error("login user lookup failed", "error", err)
			respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "unable to verify credentials"})
			return
		}
		respondJSON(ctx, w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		logger.Warn("login password mismatch", "userId", user.ID)
		respondJSON(ctx, w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	tokens, err := h.Sessions.Issue(ctx, user.ID)
	if err != nil {
		logger.Error("failed to issue session", "error", err, "userId", user.ID)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to create session"})
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{
		"user":   userResponse(user),
		"tokens": tokensResponse(tokens),
	})
}

// Logout handles POST /api/v1/users/logout requests.
func (h UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if token := bearerToken(r); token != "" {
		h.Sessions.Revoke(ctx, token)
	}

	respondJSON(ctx, w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Refresh handles POST /api/v1/users/refresh-token requests.
func (h UserHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid refresh payload", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	req.RefreshToken = strings.TrimSpace(req.RefreshToken)
	if req.RefreshToken == "" {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "refresh token is required"})
		return
	}

	tokens, err := h.Sessions.Refresh(ctx, req.RefreshToken)
	if err != nil {
		logger.Warn("refresh failed", "error", err)
		respondJSON(ctx, w, http.StatusUnauthorized, map[string]string{"error": "unable to refresh session"})
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"tokens": tokensResponse(tokens)})
}

// CurrentUser handles GET /api/v1/users/current-user requests.
func (h UserHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.Users.FindByID(ctx, CallerID(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, userResponse(user))
}

// ChangePassword handles POST /api/v1/users/change-password requests.
func (h UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.Accounts.ChangePassword(ctx, CallerID(ctx), req.OldPassword, req.NewPassword); err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]string{"status": "password changed"})
}

// UpdateAccount handles PATCH /api/v1/users/update-account requests.
func (h UserHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req updateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.Accounts.UpdateAccount(ctx, CallerID(ctx), req.FullName, req.Email); err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]string{"status": "account updated"})
}

// UpdateAvatar handles PATCH /api/v1/users/avatar multipart requests.
func (h UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, "avatar", h.Accounts.UpdateAvatar)
}

// UpdateCoverImage handles PATCH /api/v1/users/cover-image multipart requests.
func (h UserHandler) UpdateCoverImage(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, "coverImage", h.Accounts.UpdateCoverImage)
}

// WatchHistory handles GET /api/v1/users/history requests.
func (h UserHandler) WatchHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.Views.WatchHistory(ctx, CallerID(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"history": entries})
}

const timeFormat = time.RFC3339

func (h UserHandler) updateImage(w http.ResponseWriter, r *http.Request, field string, apply func(ctx context.Context, callerID, path string) (string, error)) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		logger.Warn("invalid image form", "field", field, "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	path, err := stageUpload(r, field, h.UploadDir)
	if err != nil {
		logger.Error("stage image upload", "field", field, "error", err)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to read upload"})
		return
	}

	url, err := apply(ctx, CallerID(ctx), path)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]string{"url": url})
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type updateAccountRequest struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

type userPayload struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FullName      string `json:"fullname"`
	AvatarURL     string `json:"avatar"`
	CoverImageURL string `json:"coverImage"`
}

func userResponse(user models.User) userPayload {
	return userPayload{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		FullName:      user.FullName,
		AvatarURL:     user.AvatarURL,
		CoverImageURL: user.CoverImageURL,
	}
}

type tokensPayload struct {
	AccessToken      string `json:"accessToken"`
	AccessExpiresAt  string `json:"accessExpiresAt"`
	RefreshToken     string `json:"refreshToken"`
	RefreshExpiresAt string `json:"refreshExpiresAt"`
}

func tokensResponse(tokens models.SessionTokens) tokensPayload {
	return tokensPayload{
		AccessToken:      tokens.AccessToken,
		AccessExpiresAt:  tokens.AccessExpiresAt.Format(timeFormat),
		RefreshToken:     tokens.RefreshToken,
		RefreshExpiresAt: tokens.RefreshExpiresAt.Format(timeFormat),
	}
}
