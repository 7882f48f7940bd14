package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"microtweet/internal/models"
	"microtweet/internal/repository"
)

type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	args := m.Called(ctx, tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) GetByID(ctx context.Context, tweetID string) (*models.Tweet, error) {
	args := m.Called(ctx, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) List(ctx context.Context) ([]*models.Tweet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) ListChildren(ctx context.Context, parentID string, kind models.Kind) ([]*models.Tweet, error) {
	args := m.Called(ctx, parentID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) Update(ctx context.Context, tweet *models.Tweet) error {
	args := m.Called(ctx, tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) Delete(ctx context.Context, tweetID string) (*repository.DeleteResult, error) {
	args := m.Called(ctx, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DeleteResult), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(ctx context.Context, like *models.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) ListByTweetID(ctx context.Context, tweetID string) ([]*models.Like, error) {
	args := m.Called(ctx, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Like), args.Error(1)
}

type MockBookmarkRepository struct {
	mock.Mock
}

func (m *MockBookmarkRepository) Create(ctx context.Context, bookmark *models.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

func (m *MockBookmarkRepository) ListByTweetID(ctx context.Context, tweetID string) ([]*models.Bookmark, error) {
	args := m.Called(ctx, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bookmark), args.Error(1)
}

type MockTablesRepository struct {
	mock.Mock
}

func (m *MockTablesRepository) CountTablesDB(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadMedia(ctx context.Context, tweetID string, upload *models.MediaUpload) (*models.Media, error) {
	args := m.Called(ctx, tweetID, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockStorage) DeleteMedia(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}
