package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"microtweet/internal/models"
)

var ErrTweetNotFound = errors.New("tweet not found")

// CreateTweetRequest carries the whitelisted attributes of a new tweet.
type CreateTweetRequest struct {
	Content *string
	Media   *models.MediaUpload
}

// UpdateTweetRequest carries the attributes of an update. Content is only
// applied when ContentSet is true, so an explicit null clears it.
type UpdateTweetRequest struct {
	TweetID    string
	Content    *string
	ContentSet bool
	Media      *models.MediaUpload
}

// DeleteResult reports what a cascading delete removed.
type DeleteResult struct {
	Tweets       int64
	Likes        int64
	Bookmarks    int64
	MediaObjects []string
}

type TweetRepository interface {
	Create(ctx context.Context, tweet *models.Tweet) error
	GetByID(ctx context.Context, tweetID string) (*models.Tweet, error)
	List(ctx context.Context) ([]*models.Tweet, error)
	ListChildren(ctx context.Context, parentID string, kind models.Kind) ([]*models.Tweet, error)
	Update(ctx context.Context, tweet *models.Tweet) error
	Delete(ctx context.Context, tweetID string) (*DeleteResult, error)
}

type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	ListByTweetID(ctx context.Context, tweetID string) ([]*models.Like, error)
}

type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *models.Bookmark) error
	ListByTweetID(ctx context.Context, tweetID string) ([]*models.Bookmark, error)
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	Tweet    TweetRepository
	Like     LikeRepository
	Bookmark BookmarkRepository
	Tables   TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Tweet:    NewTweetRepository(db),
		Like:     NewLikeRepository(db),
		Bookmark: NewBookmarkRepository(db),
		Tables:   NewTablesRepository(db),
	}
}
