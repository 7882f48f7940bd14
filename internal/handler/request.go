package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/gabriel-vasile/mimetype"

	"microtweet/internal/models"
	"microtweet/internal/validation"
)

var ErrMalformedBody = errors.New("malformed request body")

// optionalString tells an absent key apart from an explicit null.
type optionalString struct {
	Set   bool
	Value *string
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

type tweetFields struct {
	Content optionalString `json:"content"`
}

// tweetPayload accepts both {"content": ...} and {"tweet": {"content": ...}}.
type tweetPayload struct {
	tweetFields
	Tweet *tweetFields `json:"tweet"`
}

// tweetInput holds the permitted attributes of a tweet request: content and media.
type tweetInput struct {
	Content    *string
	ContentSet bool
	Media      *models.MediaUpload
	file       multipart.File
}

func (in *tweetInput) Close() {
	if in.file != nil {
		in.file.Close()
	}
}

func (h *Handlers) parseTweetInput(w http.ResponseWriter, r *http.Request) (*tweetInput, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize())

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(h.maxUploadSize()); err != nil {
			// An oversized form is reported as oversized media.
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, validation.MediaTooLarge()
			}
			return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}
		return parseTweetForm(r)
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}
		return parseTweetForm(r)
	default:
		return parseTweetJSON(r.Body)
	}
}

func parseTweetJSON(body io.Reader) (*tweetInput, error) {
	var payload tweetPayload
	if err := json.NewDecoder(body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	fields := payload.tweetFields
	if payload.Tweet != nil {
		fields = *payload.Tweet
	}

	return &tweetInput{Content: fields.Content.Value, ContentSet: fields.Content.Set}, nil
}

func parseTweetForm(r *http.Request) (*tweetInput, error) {
	in := &tweetInput{}

	for _, key := range []string{"content", "tweet[content]"} {
		if values, ok := r.Form[key]; ok && len(values) > 0 {
			content := values[0]
			in.Content = &content
			in.ContentSet = true
			break
		}
	}

	if r.MultipartForm == nil {
		return in, nil
	}

	for _, key := range []string{"media", "tweet[media]"} {
		file, header, err := r.FormFile(key)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}

		contentType, err := mediaContentType(file, header.Header.Get("Content-Type"))
		if err != nil {
			file.Close()
			return nil, err
		}

		in.file = file
		in.Media = &models.MediaUpload{
			Filename:    header.Filename,
			ContentType: contentType,
			Size:        header.Size,
			Reader:      file,
		}
		break
	}

	return in, nil
}

// mediaContentType trusts the declared type and sniffs the content when none was declared.
// Parameters such as charset are dropped.
func mediaContentType(file io.ReadSeeker, declared string) (string, error) {
	if declared != "" {
		mediaType, _, err := mime.ParseMediaType(declared)
		if err != nil {
			return declared, nil
		}
		if mediaType != "application/octet-stream" {
			return mediaType, nil
		}
	}

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to detect media type: %w", err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind media: %w", err)
	}

	mediaType, _, err := mime.ParseMediaType(detected.String())
	if err != nil {
		return detected.String(), nil
	}
	return mediaType, nil
}

type reactionRequest struct {
	TweetID string `json:"tweet_id" validate:"required,uuid"`
}

// parseReaction reads tweet_id from a flat body or from one wrapped in root,
// e.g. {"like": {"tweet_id": ...}}.
func parseReaction(r *http.Request, root string) (reactionRequest, error) {
	var req reactionRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data" {
		req.TweetID = r.FormValue(root + "[tweet_id]")
		if req.TweetID == "" {
			req.TweetID = r.FormValue("tweet_id")
		}
		return req, nil
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return req, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	if wrapped, ok := body[root]; ok {
		body = nil
		if err := json.Unmarshal(wrapped, &body); err != nil {
			return req, fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}
	}

	req.TweetID = rawString(body["tweet_id"])
	return req, nil
}

// rawString returns a JSON string value, or the raw literal for any other JSON type.
func rawString(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
