package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) CreateLike(w http.ResponseWriter, r *http.Request) {
	tweetID, ok := h.readReaction(w, r, "like")
	if !ok {
		return
	}

	like, err := h.LikeService.CreateLike(r.Context(), tweetID)
	if err != nil {
		writeReactionError(w, r, err)
		return
	}

	writeSuccess(w, like, http.StatusCreated)
}

func (h *Handlers) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	tweetID, ok := h.readReaction(w, r, "bookmark")
	if !ok {
		return
	}

	bookmark, err := h.BookmarkService.CreateBookmark(r.Context(), tweetID)
	if err != nil {
		writeReactionError(w, r, err)
		return
	}

	writeSuccess(w, bookmark, http.StatusCreated)
}

func (h *Handlers) ListLikes(w http.ResponseWriter, r *http.Request) {
	likes, err := h.LikeService.ListLikes(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, likes, http.StatusOK)
}

func (h *Handlers) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := h.BookmarkService.ListBookmarks(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, bookmarks, http.StatusOK)
}

// readReaction returns the referenced tweet id, writing the error response itself on failure.
func (h *Handlers) readReaction(w http.ResponseWriter, r *http.Request, root string) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize())

	req, err := parseReaction(r, root)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, MsgBodyTooLarge, http.StatusRequestEntityTooLarge)
			return "", false
		}
		WriteError(w, err.Error(), http.StatusBadRequest)
		return "", false
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, MsgTweetMustExist, http.StatusUnprocessableEntity)
		return "", false
	}

	return req.TweetID, true
}
