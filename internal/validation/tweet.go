package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"microtweet/internal/models"
)

const (
	FieldContent = "content"
	FieldMedia   = "media"

	MaxContentLength = 140
	MaxMediaSize     = 2 * 1024 * 1024

	MsgBlank            = "tweet can not be blank"
	MsgContentTooLong   = "character limit of 140 exceeded!"
	MsgUnsupportedMedia = "is not a supported media type"
	MsgMediaTooLarge    = "image size exceeds the 2MB limit!"
)

// SupportedMediaTypes lists the content types accepted for attachments.
var SupportedMediaTypes = []string{"image/jpg", "image/png", "image/jpeg"}

type MediaDescriptor struct {
	ContentType string
	ByteSize    int64
}

// Candidate is the state of a tweet about to be written.
type Candidate struct {
	Kind    models.Kind
	Content *string
	Media   *MediaDescriptor
}

type Rule func(c Candidate, errs *Errors)

// TweetRules run before every tweet write.
var TweetRules = []Rule{
	BlankRule,
	ContentLengthRule,
	MediaTypeRule,
	MediaSizeRule,
}

// Validate runs every rule and returns the collected *Errors, or nil.
func Validate(c Candidate, rules ...Rule) error {
	errs := NewErrors()
	for _, rule := range rules {
		rule(c, errs)
	}

	if errs.Empty() {
		return nil
	}
	return errs
}

// ValidateTweet runs TweetRules.
func ValidateTweet(c Candidate) error {
	return Validate(c, TweetRules...)
}

// BlankRule requires root tweets to carry content or media.
// Retweets, quote tweets and replies are exempt.
func BlankRule(c Candidate, errs *Errors) {
	if c.Kind.IsChild() {
		return
	}

	if (c.Content == nil || strings.TrimSpace(*c.Content) == "") && c.Media == nil {
		errs.Add(FieldBase, MsgBlank)
	}
}

func ContentLengthRule(c Candidate, errs *Errors) {
	if c.Content == nil {
		return
	}

	if utf8.RuneCountInString(*c.Content) > MaxContentLength {
		errs.Add(FieldContent, MsgContentTooLong)
	}
}

func MediaTypeRule(c Candidate, errs *Errors) {
	if c.Media == nil {
		return
	}

	if !lo.Contains(SupportedMediaTypes, strings.ToLower(c.Media.ContentType)) {
		errs.Add(FieldMedia, MsgUnsupportedMedia)
	}
}

func MediaSizeRule(c Candidate, errs *Errors) {
	if c.Media == nil {
		return
	}

	if c.Media.ByteSize > MaxMediaSize {
		errs.Add(FieldMedia, MsgMediaTooLarge)
	}
}
