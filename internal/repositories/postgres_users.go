package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/videotube/backend/internal/db"
	"github.com/videotube/backend/internal/models"
)

// PostgresUserRepository provides PostgreSQL-backed persistence for users.
type PostgresUserRepository struct {
	pool db.Pool
}

// NewPostgresUserRepository constructs a user repository backed by PostgreSQL.
func NewPostgresUserRepository(pool db.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

const userColumns = `id, username, email, fullname, avatar_url, cover_image_url, password_hash, created_at, updated_at`

// Create persists a new user record. Username and email are stored
// case-normalized so the uniqueness constraints apply regardless of input
// casing.
func (r *PostgresUserRepository) Create(ctx context.Context, user models.User) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, `
        INSERT INTO users (id, username, email, fullname, avatar_url, cover_image_url, password_hash, created_at, updated_at)
        VALUES ($1, lower($2), lower($3), $4, $5, $6, $7, $8, $9)
    `, user.ID, user.Username, user.Email, user.FullName, user.AvatarURL, user.CoverImageURL, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrConflict
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// FindByID fetches a user by identifier.
func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

// FindByUsername fetches a user by their case-normalized username.
func (r *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, `WHERE username = lower($1)`, strings.TrimSpace(username))
}

// FindByEmail fetches a user by their case-normalized email address.
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, `WHERE email = lower($1)`, strings.TrimSpace(email))
}

// FindByFullName fetches a user by display name. Used to resolve the feed's
// creator filter to an owner id.
func (r *PostgresUserRepository) FindByFullName(ctx context.Context, fullName string) (models.User, error) {
	return r.findOne(ctx, `WHERE fullname = $1`, strings.TrimSpace(fullName))
}

func (r *PostgresUserRepository) findOne(ctx context.Context, where string, arg any) (models.User, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users `+where, arg)

	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.FullName, &user.AvatarURL, &user.CoverImageURL, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("select user: %w", err)
	}

	return user, nil
}

// UpdateDetails modifies a user's full name and email.
func (r *PostgresUserRepository) UpdateDetails(ctx context.Context, id, fullName, email string) error {
	return r.update(ctx, `
        UPDATE users
        SET fullname = $2, email = lower($3), updated_at = $4
        WHERE id = $1
    `, id, fullName, email, time.Now().UTC())
}

// UpdateAvatar replaces a user's avatar location.
func (r *PostgresUserRepository) UpdateAvatar(ctx context.Context, id, avatarURL string) error {
	return r.update(ctx, `
        UPDATE users
        SET avatar_url = $2, updated_at = $3
        WHERE id = $1
    `, id, avatarURL, time.Now().UTC())
}

// UpdateCoverImage replaces a user's cover image location.
func (r *PostgresUserRepository) UpdateCoverImage(ctx context.Context, id, coverImageURL string) error {
	return r.update(ctx, `
        UPDATE users
        SET cover_image_url = $2, updated_at = $3
        WHERE id = $1
    `, id, coverImageURL, time.Now().UTC())
}

// UpdatePassword replaces a user's password hash.
func (r *PostgresUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.update(ctx, `
        UPDATE users
        SET password_hash = $2, updated_at = $3
        WHERE id = $1
    `, id, passwordHash, time.Now().UTC())
}

func (r *PostgresUserRepository) update(ctx context.Context, query string, args ...any) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrConflict
		}
		return fmt.Errorf("update user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// AppendWatchHistory records a view in the user's watch history. Repeat
// views of the same video append new rows.
func (r *PostgresUserRepository) AppendWatchHistory(ctx context.Context, entry models.WatchEntry) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, `
        INSERT INTO watch_history (user_id, video_id, watched_at)
        VALUES ($1, $2, $3)
    `, entry.UserID, entry.VideoID, entry.WatchedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrNotFound
		}
		return fmt.Errorf("insert watch history entry: %w", err)
	}

	return nil
}

// DeleteWatchHistoryByVideo purges history rows referencing a video. Part of
// the video deletion cascade.
func (r *PostgresUserRepository) DeleteWatchHistoryByVideo(ctx context.Context, videoID string) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `DELETE FROM watch_history WHERE video_id = $1`, videoID); err != nil {
		return fmt.Errorf("delete watch history by video: %w", err)
	}

	return nil
}

var _ UserRepository = (*PostgresUserRepository)(nil)
