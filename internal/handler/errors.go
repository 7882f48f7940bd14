package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"microtweet/internal/repository"
	"microtweet/internal/validation"
)

const (
	MsgTweetNotFound  = "Tweet not found"
	MsgTweetMustExist = "Validation failed: Tweet must exist"
	MsgInternal       = "Internal server error"
	MsgBodyTooLarge   = "Request body too large"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeSuccess(w, ErrorResponse{Message: message}, statusCode)
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeServiceError maps service errors onto status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs *validation.Errors

	switch {
	case errors.Is(err, repository.ErrTweetNotFound):
		WriteError(w, MsgTweetNotFound, http.StatusNotFound)
	case errors.As(err, &verrs):
		WriteError(w, verrs.Error(), http.StatusUnprocessableEntity)
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		WriteError(w, MsgInternal, http.StatusInternalServerError)
	}
}

// writeReactionError reports a missing tweet as a validation failure of the like or bookmark.
func writeReactionError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repository.ErrTweetNotFound) {
		WriteError(w, MsgTweetMustExist, http.StatusUnprocessableEntity)
		return
	}
	writeServiceError(w, r, err)
}
