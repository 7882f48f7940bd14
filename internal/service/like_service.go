package service

import (
	"context"

	"microtweet/internal/metrics"
	"microtweet/internal/models"
	"microtweet/internal/repository"
)

type LikeService interface {
	CreateLike(ctx context.Context, tweetID string) (*models.Like, error)
	ListLikes(ctx context.Context, tweetID string) ([]*models.Like, error)
}

type likeService struct {
	likeRepo  repository.LikeRepository
	tweetRepo repository.TweetRepository
}

func NewLikeService(likeRepo repository.LikeRepository, tweetRepo repository.TweetRepository) LikeService {
	return &likeService{
		likeRepo:  likeRepo,
		tweetRepo: tweetRepo,
	}
}

func (s *likeService) CreateLike(ctx context.Context, tweetID string) (*models.Like, error) {
	if _, err := s.tweetRepo.GetByID(ctx, tweetID); err != nil {
		return nil, err
	}

	like := &models.Like{TweetID: tweetID}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}

	metrics.ReactionsCreated.WithLabelValues("like").Inc()
	return like, nil
}

// ListLikes returns the likes of an existing tweet, oldest first.
func (s *likeService) ListLikes(ctx context.Context, tweetID string) ([]*models.Like, error) {
	if _, err := s.tweetRepo.GetByID(ctx, tweetID); err != nil {
		return nil, err
	}

	return s.likeRepo.ListByTweetID(ctx, tweetID)
}
