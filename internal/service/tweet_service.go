package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"microtweet/internal/config"
	"microtweet/internal/metrics"
	"microtweet/internal/models"
	"microtweet/internal/repository"
	"microtweet/internal/storage"
	"microtweet/internal/validation"
)

var ErrStorageUnavailable = errors.New("media storage is not configured")

type TweetService interface {
	CreateTweet(ctx context.Context, req repository.CreateTweetRequest) (*models.Tweet, error)
	CreateChild(ctx context.Context, parentID string, kind models.Kind, req repository.CreateTweetRequest) (*models.Tweet, error)
	UpdateTweet(ctx context.Context, req repository.UpdateTweetRequest) (*models.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID string) (*repository.DeleteResult, error)
	GetTweet(ctx context.Context, tweetID string) (*models.Tweet, error)
	ListTweets(ctx context.Context) ([]*models.Tweet, error)
	ListChildren(ctx context.Context, parentID string, kind models.Kind) ([]*models.Tweet, error)
}

type tweetService struct {
	tweetRepo repository.TweetRepository
	storage   storage.Storage
	cfg       *config.Config
}

func NewTweetService(tweetRepo repository.TweetRepository, storage storage.Storage, cfg *config.Config) TweetService {
	return &tweetService{
		tweetRepo: tweetRepo,
		storage:   storage,
		cfg:       cfg,
	}
}

func (s *tweetService) CreateTweet(ctx context.Context, req repository.CreateTweetRequest) (*models.Tweet, error) {
	tweet := &models.Tweet{Content: req.Content}

	return s.create(ctx, tweet, req.Media)
}

// CreateChild stores a retweet, quote tweet or reply of parentID.
func (s *tweetService) CreateChild(ctx context.Context, parentID string, kind models.Kind, req repository.CreateTweetRequest) (*models.Tweet, error) {
	if !kind.IsChild() {
		return nil, fmt.Errorf("unknown tweet kind %q", kind)
	}

	parent, err := s.tweetRepo.GetByID(ctx, parentID)
	if err != nil {
		return nil, err
	}

	tweet := &models.Tweet{Content: req.Content}
	tweet.SetParent(parent.ID, kind)

	return s.create(ctx, tweet, req.Media)
}

func (s *tweetService) create(ctx context.Context, tweet *models.Tweet, upload *models.MediaUpload) (*models.Tweet, error) {
	if err := validate(tweet.Kind(), tweet.Content, uploadDescriptor(upload)); err != nil {
		return nil, err
	}

	tweet.ID = uuid.New().String()

	if upload != nil {
		media, err := s.upload(ctx, tweet.ID, upload)
		if err != nil {
			return nil, err
		}
		tweet.AttachMedia(media)
	}

	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		if tweet.HasMedia() {
			s.removeMedia(ctx, *tweet.MediaObject)
		}
		return nil, err
	}

	metrics.TweetsCreated.WithLabelValues(string(tweet.Kind())).Inc()
	slog.InfoContext(ctx, "tweet created", "tweet_id", tweet.ID, "kind", tweet.Kind())

	return tweet, nil
}

// UpdateTweet merges the request into the stored tweet and re-validates the result.
// Content is replaced only when the request sets it. Media is replaced only by a new upload.
func (s *tweetService) UpdateTweet(ctx context.Context, req repository.UpdateTweetRequest) (*models.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(ctx, req.TweetID)
	if err != nil {
		return nil, err
	}

	content := tweet.Content
	if req.ContentSet {
		content = req.Content
	}

	descriptor := storedDescriptor(tweet.Media())
	if req.Media != nil {
		descriptor = uploadDescriptor(req.Media)
	}

	if err := validate(tweet.Kind(), content, descriptor); err != nil {
		return nil, err
	}

	tweet.Content = content

	replaced := tweet.Media()
	if req.Media != nil {
		media, err := s.upload(ctx, tweet.ID, req.Media)
		if err != nil {
			return nil, err
		}
		tweet.AttachMedia(media)
	}

	if err := s.tweetRepo.Update(ctx, tweet); err != nil {
		if req.Media != nil {
			s.removeMedia(ctx, *tweet.MediaObject)
		}
		return nil, err
	}

	if req.Media != nil && replaced != nil {
		s.removeMedia(ctx, replaced.Object)
	}

	return tweet, nil
}

// DeleteTweet removes the tweet with everything derived from it, then drops
// the stored media. Media removal failures are only logged.
func (s *tweetService) DeleteTweet(ctx context.Context, tweetID string) (*repository.DeleteResult, error) {
	result, err := s.tweetRepo.Delete(ctx, tweetID)
	if err != nil {
		return nil, err
	}

	metrics.CascadeDeleted.WithLabelValues("tweets").Add(float64(result.Tweets))
	metrics.CascadeDeleted.WithLabelValues("likes").Add(float64(result.Likes))
	metrics.CascadeDeleted.WithLabelValues("bookmarks").Add(float64(result.Bookmarks))

	for _, object := range result.MediaObjects {
		s.removeMedia(ctx, object)
	}

	slog.InfoContext(ctx, "tweet deleted",
		"tweet_id", tweetID,
		"tweets", result.Tweets,
		"likes", result.Likes,
		"bookmarks", result.Bookmarks,
	)

	return result, nil
}

func (s *tweetService) GetTweet(ctx context.Context, tweetID string) (*models.Tweet, error) {
	return s.tweetRepo.GetByID(ctx, tweetID)
}

func (s *tweetService) ListTweets(ctx context.Context) ([]*models.Tweet, error) {
	return s.tweetRepo.List(ctx)
}

func (s *tweetService) ListChildren(ctx context.Context, parentID string, kind models.Kind) ([]*models.Tweet, error) {
	if _, err := s.tweetRepo.GetByID(ctx, parentID); err != nil {
		return nil, err
	}

	return s.tweetRepo.ListChildren(ctx, parentID, kind)
}

func (s *tweetService) upload(ctx context.Context, tweetID string, upload *models.MediaUpload) (*models.Media, error) {
	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}

	media, err := s.storage.UploadMedia(ctx, tweetID, upload)
	if err != nil {
		return nil, fmt.Errorf("failed to store media for tweet %s: %w", tweetID, err)
	}

	metrics.MediaUploadBytes.Observe(float64(media.ByteSize))
	slog.InfoContext(ctx, "media stored",
		"tweet_id", tweetID,
		"object", media.Object,
		"size", humanize.IBytes(uint64(media.ByteSize)), // nolint:gosec
	)

	return media, nil
}

func (s *tweetService) removeMedia(ctx context.Context, objectName string) {
	if s.storage == nil {
		return
	}

	if err := s.storage.DeleteMedia(ctx, objectName); err != nil {
		slog.WarnContext(ctx, "failed to remove media", "object", objectName, "error", err)
	}
}

func validate(kind models.Kind, content *string, media *validation.MediaDescriptor) error {
	err := validation.ValidateTweet(validation.Candidate{
		Kind:    kind,
		Content: content,
		Media:   media,
	})

	var verrs *validation.Errors
	if errors.As(err, &verrs) {
		for _, field := range verrs.Fields() {
			metrics.ValidationFailures.WithLabelValues(field).Inc()
		}
	}

	return err
}

func uploadDescriptor(upload *models.MediaUpload) *validation.MediaDescriptor {
	if upload == nil {
		return nil
	}
	return &validation.MediaDescriptor{ContentType: upload.ContentType, ByteSize: upload.Size}
}

func storedDescriptor(media *models.Media) *validation.MediaDescriptor {
	if media == nil {
		return nil
	}
	return &validation.MediaDescriptor{ContentType: media.ContentType, ByteSize: media.ByteSize}
}
