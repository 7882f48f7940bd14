package models

import (
	"io"
	"time"
)

// Kind tells how a tweet relates to its parent. Root tweets have no parent.
type Kind string

const (
	KindRoot       Kind = "tweet"
	KindRetweet    Kind = "retweet"
	KindQuoteTweet Kind = "quote_tweet"
	KindReply      Kind = "reply"
)

// ChildKinds are the kinds that require a parent tweet.
var ChildKinds = []Kind{KindRetweet, KindQuoteTweet, KindReply}

func (k Kind) IsChild() bool {
	return k == KindRetweet || k == KindQuoteTweet || k == KindReply
}

// Tweet is a row of the tweets table. Retweets, quote tweets and replies are
// rows pointing at their parent through TweetID with exactly one flag set.
type Tweet struct {
	ID               string    `json:"id" db:"id"`
	Content          *string   `json:"content" db:"content"`
	TweetID          *string   `json:"tweet_id" db:"tweet_id"`
	IsRetweet        bool      `json:"is_retweet" db:"is_retweet"`
	IsQuoteTweet     bool      `json:"is_quote_tweet" db:"is_quote_tweet"`
	IsReply          bool      `json:"is_reply" db:"is_reply"`
	MediaObject      *string   `json:"-" db:"media_object"`
	MediaURL         *string   `json:"media_url" db:"media_url"`
	MediaContentType *string   `json:"-" db:"media_content_type"`
	MediaByteSize    *int64    `json:"-" db:"media_byte_size"`
	MediaFilename    *string   `json:"-" db:"media_filename"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// Kind derives the relationship from the flag columns.
func (t *Tweet) Kind() Kind {
	switch {
	case t.IsRetweet:
		return KindRetweet
	case t.IsQuoteTweet:
		return KindQuoteTweet
	case t.IsReply:
		return KindReply
	default:
		return KindRoot
	}
}

// SetParent links the tweet to parentID as the given kind.
func (t *Tweet) SetParent(parentID string, kind Kind) {
	t.TweetID = &parentID
	t.IsRetweet = kind == KindRetweet
	t.IsQuoteTweet = kind == KindQuoteTweet
	t.IsReply = kind == KindReply
}

func (t *Tweet) HasMedia() bool {
	return t.MediaObject != nil && *t.MediaObject != ""
}

// Media describes the attachment currently stored for the tweet, nil when there is none.
func (t *Tweet) Media() *Media {
	if !t.HasMedia() {
		return nil
	}

	m := &Media{Object: *t.MediaObject}
	if t.MediaURL != nil {
		m.URL = *t.MediaURL
	}
	if t.MediaContentType != nil {
		m.ContentType = *t.MediaContentType
	}
	if t.MediaByteSize != nil {
		m.ByteSize = *t.MediaByteSize
	}
	if t.MediaFilename != nil {
		m.Filename = *t.MediaFilename
	}
	return m
}

// AttachMedia points the media columns at m, or clears them when m is nil.
func (t *Tweet) AttachMedia(m *Media) {
	if m == nil {
		t.MediaObject = nil
		t.MediaURL = nil
		t.MediaContentType = nil
		t.MediaByteSize = nil
		t.MediaFilename = nil
		return
	}

	t.MediaObject = &m.Object
	t.MediaURL = &m.URL
	t.MediaContentType = &m.ContentType
	t.MediaByteSize = &m.ByteSize
	t.MediaFilename = &m.Filename
}

// Media is an attachment stored in object storage.
type Media struct {
	Object      string
	URL         string
	ContentType string
	ByteSize    int64
	Filename    string
}

// MediaUpload is an incoming file that has not been stored yet.
type MediaUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type Like struct {
	ID        string    `json:"id" db:"id"`
	TweetID   string    `json:"tweet_id" db:"tweet_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type Bookmark struct {
	ID        string    `json:"id" db:"id"`
	TweetID   string    `json:"tweet_id" db:"tweet_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
