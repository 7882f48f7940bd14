package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const foreignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

// checkTweetID rejects ids that can never match a row, Postgres would fail the cast otherwise.
func checkTweetID(tweetID string) error {
	if _, err := uuid.Parse(tweetID); err != nil {
		return fmt.Errorf("tweet %q: %w", tweetID, ErrTweetNotFound)
	}
	return nil
}
