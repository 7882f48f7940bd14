package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"microtweet/internal/models"
	"microtweet/internal/repository"
	"microtweet/internal/validation"
)

type TweetResponse struct {
	ID            string      `json:"id"`
	Content       *string     `json:"content"`
	TweetID       *string     `json:"tweet_id"`
	IsRetweet     bool        `json:"is_retweet"`
	IsQuoteTweet  bool        `json:"is_quote_tweet"`
	IsReply       bool        `json:"is_reply"`
	Kind          models.Kind `json:"kind"`
	MediaAttached bool        `json:"media_attached"`
	MediaURL      *string     `json:"media_url"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func newTweetResponse(t *models.Tweet) TweetResponse {
	return TweetResponse{
		ID:            t.ID,
		Content:       t.Content,
		TweetID:       t.TweetID,
		IsRetweet:     t.IsRetweet,
		IsQuoteTweet:  t.IsQuoteTweet,
		IsReply:       t.IsReply,
		Kind:          t.Kind(),
		MediaAttached: t.HasMedia(),
		MediaURL:      t.MediaURL,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func newTweetResponses(tweets []*models.Tweet) []TweetResponse {
	return lo.Map(tweets, func(t *models.Tweet, _ int) TweetResponse {
		return newTweetResponse(t)
	})
}

// childPaths are the collection names of derived tweets under /tweets/{id}/.
var childPaths = map[models.Kind]string{
	models.KindRetweet:    "retweets",
	models.KindQuoteTweet: "quote_tweets",
	models.KindReply:      "replies",
}

func (h *Handlers) ListTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.TweetService.ListTweets(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, newTweetResponses(tweets), http.StatusOK)
}

func (h *Handlers) GetTweet(w http.ResponseWriter, r *http.Request) {
	tweet, err := h.TweetService.GetTweet(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, newTweetResponse(tweet), http.StatusOK)
}

func (h *Handlers) CreateTweet(w http.ResponseWriter, r *http.Request) {
	in, ok := h.readTweetInput(w, r)
	if !ok {
		return
	}
	defer in.Close()

	tweet, err := h.TweetService.CreateTweet(r.Context(), repository.CreateTweetRequest{
		Content: in.Content,
		Media:   in.Media,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, newTweetResponse(tweet), http.StatusCreated)
}

func (h *Handlers) UpdateTweet(w http.ResponseWriter, r *http.Request) {
	in, ok := h.readTweetInput(w, r)
	if !ok {
		return
	}
	defer in.Close()

	_, err := h.TweetService.UpdateTweet(r.Context(), repository.UpdateTweetRequest{
		TweetID:    mux.Vars(r)["id"],
		Content:    in.Content,
		ContentSet: in.ContentSet,
		Media:      in.Media,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	if _, err := h.TweetService.DeleteTweet(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateChild returns the handler that stores a tweet of the given kind under /tweets/{id}.
func (h *Handlers) CreateChild(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := h.readTweetInput(w, r)
		if !ok {
			return
		}
		defer in.Close()

		tweet, err := h.TweetService.CreateChild(r.Context(), mux.Vars(r)["id"], kind, repository.CreateTweetRequest{
			Content: in.Content,
			Media:   in.Media,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeSuccess(w, newTweetResponse(tweet), http.StatusCreated)
	}
}

func (h *Handlers) ListChildren(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tweets, err := h.TweetService.ListChildren(r.Context(), mux.Vars(r)["id"], kind)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeSuccess(w, newTweetResponses(tweets), http.StatusOK)
	}
}

func (h *Handlers) readTweetInput(w http.ResponseWriter, r *http.Request) (*tweetInput, bool) {
	in, err := h.parseTweetInput(w, r)
	if err != nil {
		var verrs *validation.Errors
		if errors.As(err, &verrs) {
			WriteError(w, verrs.Error(), http.StatusUnprocessableEntity)
			return nil, false
		}

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, MsgBodyTooLarge, http.StatusRequestEntityTooLarge)
			return nil, false
		}
		WriteError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return in, true
}
