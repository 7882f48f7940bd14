package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/samber/lo"

	"microtweet/internal/models"
)

const tweetColumns = `id, content, tweet_id, is_retweet, is_quote_tweet, is_reply,
	media_object, media_url, media_content_type, media_byte_size, media_filename,
	created_at, updated_at`

// kindColumns maps a child kind to the flag column that marks it.
var kindColumns = map[models.Kind]string{
	models.KindRetweet:    "is_retweet",
	models.KindQuoteTweet: "is_quote_tweet",
	models.KindReply:      "is_reply",
}

// subtreeQuery walks tweet_id links down from the given tweet, the tweet included.
const subtreeQuery = `
	WITH RECURSIVE subtree AS (
		SELECT id, media_object FROM tweets WHERE id = $1
		UNION ALL
		SELECT t.id, t.media_object FROM tweets t JOIN subtree s ON t.tweet_id = s.id
	)
	SELECT id, media_object FROM subtree
`

type TweetRepositoryImpl struct {
	DB *sqlx.DB
}

func NewTweetRepository(db *sqlx.DB) *TweetRepositoryImpl {
	return &TweetRepositoryImpl{DB: db}
}

func (r *TweetRepositoryImpl) Create(ctx context.Context, tweet *models.Tweet) error {
	query := `
		INSERT INTO tweets
		(id, content, tweet_id, is_retweet, is_quote_tweet, is_reply,
		 media_object, media_url, media_content_type, media_byte_size, media_filename,
		 created_at, updated_at)
		VALUES
		(:id, :content, :tweet_id, :is_retweet, :is_quote_tweet, :is_reply,
		 :media_object, :media_url, :media_content_type, :media_byte_size, :media_filename,
		 :created_at, :updated_at)
	`

	if tweet.ID == "" {
		tweet.ID = uuid.New().String()
	}

	now := time.Now()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	_, err := r.DB.NamedExecContext(ctx, query, tweet)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("parent of tweet %s: %w", tweet.ID, ErrTweetNotFound)
		}
		return fmt.Errorf("failed to create tweet: %w", err)
	}

	return nil
}

func (r *TweetRepositoryImpl) GetByID(ctx context.Context, tweetID string) (*models.Tweet, error) {
	if err := checkTweetID(tweetID); err != nil {
		return nil, err
	}

	query := `SELECT ` + tweetColumns + ` FROM tweets WHERE id = $1`

	var tweet models.Tweet
	err := r.DB.GetContext(ctx, &tweet, query, tweetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tweet %s: %w", tweetID, ErrTweetNotFound)
		}
		return nil, fmt.Errorf("failed to get tweet: %w", err)
	}

	return &tweet, nil
}

func (r *TweetRepositoryImpl) List(ctx context.Context) ([]*models.Tweet, error) {
	query := `SELECT ` + tweetColumns + ` FROM tweets ORDER BY created_at`

	tweets := []*models.Tweet{}
	if err := r.DB.SelectContext(ctx, &tweets, query); err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}

	return tweets, nil
}

// ListChildren returns the retweets, quote tweets or replies of parentID.
func (r *TweetRepositoryImpl) ListChildren(ctx context.Context, parentID string, kind models.Kind) ([]*models.Tweet, error) {
	column, ok := kindColumns[kind]
	if !ok {
		return nil, fmt.Errorf("unknown tweet kind %q", kind)
	}

	if err := checkTweetID(parentID); err != nil {
		return nil, err
	}

	query := `SELECT ` + tweetColumns + ` FROM tweets WHERE tweet_id = $1 AND ` + column + ` ORDER BY created_at`

	tweets := []*models.Tweet{}
	if err := r.DB.SelectContext(ctx, &tweets, query, parentID); err != nil {
		return nil, fmt.Errorf("failed to list %s of tweet %s: %w", kind, parentID, err)
	}

	return tweets, nil
}

// Update persists content and media. Linkage columns are never written here.
func (r *TweetRepositoryImpl) Update(ctx context.Context, tweet *models.Tweet) error {
	query := `
		UPDATE tweets SET
			content = :content,
			media_object = :media_object,
			media_url = :media_url,
			media_content_type = :media_content_type,
			media_byte_size = :media_byte_size,
			media_filename = :media_filename,
			updated_at = :updated_at
		WHERE id = :id
	`

	tweet.UpdatedAt = time.Now()

	result, err := r.DB.NamedExecContext(ctx, query, tweet)
	if err != nil {
		return fmt.Errorf("failed to update tweet: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("tweet %s: %w", tweet.ID, ErrTweetNotFound)
	}

	return nil
}

// Delete removes the tweet, every tweet derived from it, and the likes and
// bookmarks of all of them in one transaction.
func (r *TweetRepositoryImpl) Delete(ctx context.Context, tweetID string) (*DeleteResult, error) {
	if err := checkTweetID(tweetID); err != nil {
		return nil, err
	}

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	result, err := deleteSubtree(ctx, tx, tweetID)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return nil, fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit tweet deletion: %w", err)
	}

	return result, nil
}

type subtreeRow struct {
	ID          string  `db:"id"`
	MediaObject *string `db:"media_object"`
}

func deleteSubtree(ctx context.Context, tx *sqlx.Tx, tweetID string) (*DeleteResult, error) {
	// the lock keeps new children from attaching to the root while it is removed
	var lockedID string
	err := tx.GetContext(ctx, &lockedID, `SELECT id FROM tweets WHERE id = $1 FOR UPDATE`, tweetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tweet %s: %w", tweetID, ErrTweetNotFound)
		}
		return nil, fmt.Errorf("failed to lock tweet: %w", err)
	}

	var rows []subtreeRow
	if err := tx.SelectContext(ctx, &rows, subtreeQuery, tweetID); err != nil {
		return nil, fmt.Errorf("failed to collect dependent tweets: %w", err)
	}

	ids := lo.Map(rows, func(row subtreeRow, _ int) string { return row.ID })
	result := &DeleteResult{
		MediaObjects: lo.FilterMap(rows, func(row subtreeRow, _ int) (string, bool) {
			if row.MediaObject == nil || *row.MediaObject == "" {
				return "", false
			}
			return *row.MediaObject, true
		}),
	}

	steps := []struct {
		query string
		count *int64
	}{
		{`DELETE FROM likes WHERE tweet_id = ANY($1)`, &result.Likes},
		{`DELETE FROM bookmarks WHERE tweet_id = ANY($1)`, &result.Bookmarks},
		{`DELETE FROM tweets WHERE id = ANY($1)`, &result.Tweets},
	}

	for _, step := range steps {
		res, err := tx.ExecContext(ctx, step.query, pq.Array(ids))
		if err != nil {
			return nil, fmt.Errorf("failed to delete tweet %s: %w", tweetID, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to check deleted rows: %w", err)
		}
		*step.count = n
	}

	return result, nil
}
