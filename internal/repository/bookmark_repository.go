package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"microtweet/internal/models"
)

type BookmarkRepositoryImpl struct {
	DB *sqlx.DB
}

func NewBookmarkRepository(db *sqlx.DB) *BookmarkRepositoryImpl {
	return &BookmarkRepositoryImpl{DB: db}
}

func (r *BookmarkRepositoryImpl) Create(ctx context.Context, bookmark *models.Bookmark) error {
	query := `
		INSERT INTO bookmarks (id, tweet_id, created_at, updated_at)
		VALUES (:id, :tweet_id, :created_at, :updated_at)
	`

	if err := checkTweetID(bookmark.TweetID); err != nil {
		return err
	}

	if bookmark.ID == "" {
		bookmark.ID = uuid.New().String()
	}

	now := time.Now()
	bookmark.CreatedAt = now
	bookmark.UpdatedAt = now

	_, err := r.DB.NamedExecContext(ctx, query, bookmark)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("tweet %s: %w", bookmark.TweetID, ErrTweetNotFound)
		}
		return fmt.Errorf("failed to create bookmark: %w", err)
	}

	return nil
}

func (r *BookmarkRepositoryImpl) ListByTweetID(ctx context.Context, tweetID string) ([]*models.Bookmark, error) {
	if err := checkTweetID(tweetID); err != nil {
		return nil, err
	}

	query := `SELECT id, tweet_id, created_at, updated_at FROM bookmarks WHERE tweet_id = $1 ORDER BY created_at`

	bookmarks := []*models.Bookmark{}
	if err := r.DB.SelectContext(ctx, &bookmarks, query, tweetID); err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	return bookmarks, nil
}
