package services

import (
	"context"
	"fmt"
	"net/mail"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/videotube/backend/internal/logging"
	"github.com/videotube/backend/internal/models"
	"github.com/videotube/backend/internal/repositories"
)

// UserService orchestrates account mutations: registration, credential and
// profile updates, and avatar/cover image replacement.
type UserService struct {
	Users   repositories.UserRepository
	Media   MediaStore
	Cleanup TempFileCleaner
	NowFunc func() time.Time
}

// RegisterInput carries the fields and staged upload paths for a new account.
type RegisterInput struct {
	Username       string
	Email          string
	FullName       string
	Password       string
	AvatarPath     string
	CoverImagePath string
}

// Register validates and creates a new user. The avatar is required, the
// cover image optional. A store failure after the uploads triggers
// compensating media deletes.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	defer s.discard(ctx, in.AvatarPath, in.CoverImagePath)

	for name, value := range map[string]string{
		"username": in.Username,
		"email":    in.Email,
		"fullname": in.FullName,
		"password": in.Password,
	} {
		if strings.TrimSpace(value) == "" {
			return models.User{}, validationErr("%s is required", name)
		}
	}

	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return models.User{}, validationErr("invalid email address")
	}

	if in.AvatarPath == "" {
		return models.User{}, validationErr("avatar is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	id := uuid.NewString()

	avatarURL, err := s.upload(ctx, path.Join("users", id, "avatar"+filepath.Ext(in.AvatarPath)), in.AvatarPath)
	if err != nil {
		return models.User{}, dependencyErr("upload avatar", err)
	}

	coverImageURL := ""
	if in.CoverImagePath != "" {
		coverImageURL, err = s.upload(ctx, path.Join("users", id, "cover"+filepath.Ext(in.CoverImagePath)), in.CoverImagePath)
		if err != nil {
			s.deleteMedia(ctx, avatarURL)
			return models.User{}, dependencyErr("upload cover image", err)
		}
	}

	now := s.now()
	user := models.User{
		ID:            id,
		Username:      strings.ToLower(strings.TrimSpace(in.Username)),
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		FullName:      strings.TrimSpace(in.FullName),
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
		PasswordHash:  string(hashed),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Users.Create(ctx, user); err != nil {
		s.deleteMedia(ctx, avatarURL)
		s.deleteMedia(ctx, coverImageURL)
		return models.User{}, err
	}

	user.PasswordHash = ""
	return user, nil
}

// ChangePassword verifies the old password before storing a new hash.
func (s *UserService) ChangePassword(ctx context.Context, callerID, oldPassword, newPassword string) error {
	if strings.TrimSpace(oldPassword) == "" || strings.TrimSpace(newPassword) == "" {
		return validationErr("old and new passwords are required")
	}

	user, err := s.Users.FindByID(ctx, callerID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return fmt.Errorf("%w: old password does not match", ErrForbidden)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.Users.UpdatePassword(ctx, callerID, string(hashed))
}

// UpdateAccount modifies the caller's full name and email.
func (s *UserService) UpdateAccount(ctx context.Context, callerID, fullName, email string) error {
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(email) == "" {
		return validationErr("fullname and email are required")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(email)); err != nil {
		return validationErr("invalid email address")
	}

	return s.Users.UpdateDetails(ctx, callerID, strings.TrimSpace(fullName), strings.TrimSpace(email))
}

// UpdateAvatar uploads a replacement avatar and deletes the previous object.
func (s *UserService) UpdateAvatar(ctx context.Context, callerID, avatarPath string) (string, error) {
	defer s.discard(ctx, avatarPath)

	if avatarPath == "" {
		return "", validationErr("avatar is required")
	}

	user, err := s.Users.FindByID(ctx, callerID)
	if err != nil {
		return "", err
	}

	url, err := s.upload(ctx, path.Join("users", user.ID, "avatar"+filepath.Ext(avatarPath)), avatarPath)
	if err != nil {
		return "", dependencyErr("upload avatar", err)
	}

	if err := s.Users.UpdateAvatar(ctx, callerID, url); err != nil {
		s.deleteMedia(ctx, url)
		return "", err
	}

	if user.AvatarURL != "" && user.AvatarURL != url {
		s.deleteMedia(ctx, user.AvatarURL)
	}

	return url, nil
}

// UpdateCoverImage uploads a replacement cover image and deletes the
// previous object.
func (s *UserService) UpdateCoverImage(ctx context.Context, callerID, coverImagePath string) (string, error) {
	defer s.discard(ctx, coverImagePath)

	if coverImagePath == "" {
		return "", validationErr("cover image is required")
	}

	user, err := s.Users.FindByID(ctx, callerID)
	if err != nil {
		return "", err
	}

	url, err := s.upload(ctx, path.Join("users", user.ID, "cover"+filepath.Ext(coverImagePath)), coverImagePath)
	if err != nil {
		return "", dependencyErr("upload cover image", err)
	}

	if err := s.Users.UpdateCoverImage(ctx, callerID, url); err != nil {
		s.deleteMedia(ctx, url)
		return "", err
	}

	if user.CoverImageURL != "" && user.CoverImageURL != url {
		s.deleteMedia(ctx, user.CoverImageURL)
	}

	return url, nil
}

func (s *UserService) upload(ctx context.Context, key, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return s.Media.Save(ctx, key, f)
}

func (s *UserService) deleteMedia(ctx context.Context, location string) {
	if location == "" {
		return
	}
	if err := s.Media.Delete(ctx, location); err != nil {
		logging.FromContext(ctx).Error("compensating media delete failed", "location", location, "error", err)
	}
}

func (s *UserService) discard(ctx context.Context, paths ...string) {
	if s.Cleanup == nil {
		return
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := s.Cleanup.Enqueue(ctx, p); err != nil {
			logging.FromContext(ctx).Warn("schedule upload cleanup", "path", p, "error", err)
		}
	}
}

func (s *UserService) now() time.Time {
	if s.NowFunc != nil {
		return s.NowFunc()
	}
	return time.Now().UTC()
}
