package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"microtweet/internal/models"
	"microtweet/internal/repository"
)

type MockTweetService struct {
	mock.Mock
}

func (m *MockTweetService) CreateTweet(ctx context.Context, req repository.CreateTweetRequest) (*models.Tweet, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetService) CreateChild(ctx context.Context, parentID string, kind models.Kind, req repository.CreateTweetRequest) (*models.Tweet, error) {
	args := m.Called(ctx, parentID, kind, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetService) UpdateTweet(ctx context.Context, req repository.UpdateTweetRequest) (*models.Tweet, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetService) DeleteTweet(ctx context.Context, tweetID string) (*repository.DeleteResult, error) {
	args := m.Called(ctx, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DeleteResult), args.Error(1)
}

func (m *MockTweetService) GetTweet(ctx context.Context, tweetID string) (*models.Tweet, error) {
	args := m.Called(ctx, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetService) ListTweets(ctx context.Context) ([]*models.Tweet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tweet), args.Error(1)
}

func (m *MockTweetService) ListChildren(ctx context.Context, parentID string, kind models.Kind) ([]*models.Tweet, error) {
	args := m.Called(ctx, parentID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tweet), args.Error(1)
}

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) CreateLike(ctx context.Context, tweetID string) (*models.Like, error) {
	args := m.Called(ctx, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

func (m *MockLikeService) ListLikes(ctx context.Context, tweetID string) ([]*models.Like, error) {
	args := m.Called(ctx, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Like), args.Error(1)
}

type MockBookmarkService struct {
	mock.Mock
}

func (m *MockBookmarkService) CreateBookmark(ctx context.Context, tweetID string) (*models.Bookmark, error) {
	args := m.Called(ctx, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bookmark), args.Error(1)
}

func (m *MockBookmarkService) ListBookmarks(ctx context.Context, tweetID string) ([]*models.Bookmark, error) {
	args := m.Called(ctx, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bookmark), args.Error(1)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) GetCountTablesBD(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
