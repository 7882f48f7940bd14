package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"microtweet/internal/models"
)

type LikeRepositoryImpl struct {
	DB *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) *LikeRepositoryImpl {
	return &LikeRepositoryImpl{DB: db}
}

func (r *LikeRepositoryImpl) Create(ctx context.Context, like *models.Like) error {
	query := `
		INSERT INTO likes (id, tweet_id, created_at, updated_at)
		VALUES (:id, :tweet_id, :created_at, :updated_at)
	`

	if err := checkTweetID(like.TweetID); err != nil {
		return err
	}

	if like.ID == "" {
		like.ID = uuid.New().String()
	}

	now := time.Now()
	like.CreatedAt = now
	like.UpdatedAt = now

	_, err := r.DB.NamedExecContext(ctx, query, like)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("tweet %s: %w", like.TweetID, ErrTweetNotFound)
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	return nil
}

func (r *LikeRepositoryImpl) ListByTweetID(ctx context.Context, tweetID string) ([]*models.Like, error) {
	if err := checkTweetID(tweetID); err != nil {
		return nil, err
	}

	query := `SELECT id, tweet_id, created_at, updated_at FROM likes WHERE tweet_id = $1 ORDER BY created_at`

	likes := []*models.Like{}
	if err := r.DB.SelectContext(ctx, &likes, query, tweetID); err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}

	return likes, nil
}
