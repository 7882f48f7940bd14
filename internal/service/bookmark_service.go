package service

import (
	"context"

	"microtweet/internal/metrics"
	"microtweet/internal/models"
	"microtweet/internal/repository"
)

type BookmarkService interface {
	CreateBookmark(ctx context.Context, tweetID string) (*models.Bookmark, error)
	ListBookmarks(ctx context.Context, tweetID string) ([]*models.Bookmark, error)
}

type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	tweetRepo    repository.TweetRepository
}

func NewBookmarkService(bookmarkRepo repository.BookmarkRepository, tweetRepo repository.TweetRepository) BookmarkService {
	return &bookmarkService{
		bookmarkRepo: bookmarkRepo,
		tweetRepo:    tweetRepo,
	}
}

func (s *bookmarkService) CreateBookmark(ctx context.Context, tweetID string) (*models.Bookmark, error) {
	if _, err := s.tweetRepo.GetByID(ctx, tweetID); err != nil {
		return nil, err
	}

	bookmark := &models.Bookmark{TweetID: tweetID}
	if err := s.bookmarkRepo.Create(ctx, bookmark); err != nil {
		return nil, err
	}

	metrics.ReactionsCreated.WithLabelValues("bookmark").Inc()
	return bookmark, nil
}

// ListBookmarks returns the bookmarks of an existing tweet, oldest first.
func (s *bookmarkService) ListBookmarks(ctx context.Context, tweetID string) ([]*models.Bookmark, error) {
	if _, err := s.tweetRepo.GetByID(ctx, tweetID); err != nil {
		return nil, err
	}

	return s.bookmarkRepo.ListByTweetID(ctx, tweetID)
}
