package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microtweet/internal/models"
)

func TestLikeRepositoryImpl_Create(t *testing.T) {
	tweetID := uuid.New().String()

	tests := []struct {
		name        string
		tweetID     string
		setupMock   func(mock sqlmock.Sqlmock)
		expectError error
		errorMsg    string
	}{
		{
			name:    "success",
			tweetID: tweetID,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO likes`).
					WithArgs(sqlmock.AnyArg(), tweetID, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:    "unknown tweet",
			tweetID: tweetID,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO likes`).
					WillReturnError(&pq.Error{Code: "23503"})
			},
			expectError: ErrTweetNotFound,
		},
		{
			name:        "malformed tweet id",
			tweetID:     "not-a-uuid",
			setupMock:   func(mock sqlmock.Sqlmock) {},
			expectError: ErrTweetNotFound,
		},
		{
			name:    "database error",
			tweetID: tweetID,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO likes`).
					WillReturnError(errors.New("database error"))
			},
			errorMsg: "failed to create like",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			tc.setupMock(mock)

			like := &models.Like{TweetID: tc.tweetID}
			err := NewLikeRepository(db).Create(context.Background(), like)

			switch {
			case tc.expectError != nil:
				assert.ErrorIs(t, err, tc.expectError)
			case tc.errorMsg != "":
				assert.ErrorContains(t, err, tc.errorMsg)
			default:
				require.NoError(t, err)
				assert.NotEmpty(t, like.ID)
				assert.False(t, like.CreatedAt.IsZero())
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLikeRepositoryImpl_ListByTweetID(t *testing.T) {
	db, mock := setupMockDB(t)
	tweetID := uuid.New().String()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM likes WHERE tweet_id = $1`)).
		WithArgs(tweetID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tweet_id", "created_at", "updated_at"}).
			AddRow(uuid.New().String(), tweetID, now, now).
			AddRow(uuid.New().String(), tweetID, now, now))

	likes, err := NewLikeRepository(db).ListByTweetID(context.Background(), tweetID)

	require.NoError(t, err)
	assert.Len(t, likes, 2)
	assert.Equal(t, tweetID, likes[0].TweetID)
}
