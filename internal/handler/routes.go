package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"microtweet/internal/models"
)

func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/tweets", h.ListTweets).Methods(http.MethodGet)
	r.HandleFunc("/tweets", h.CreateTweet).Methods(http.MethodPost)
	r.HandleFunc("/tweets/{id}", h.GetTweet).Methods(http.MethodGet)
	r.HandleFunc("/tweets/{id}", h.UpdateTweet).Methods(http.MethodPatch, http.MethodPut)
	r.HandleFunc("/tweets/{id}", h.DeleteTweet).Methods(http.MethodDelete)

	for _, kind := range models.ChildKinds {
		path := "/tweets/{id}/" + childPaths[kind]
		r.HandleFunc(path, h.CreateChild(kind)).Methods(http.MethodPost)
		r.HandleFunc(path, h.ListChildren(kind)).Methods(http.MethodGet)
	}

	r.HandleFunc("/tweets/{id}/likes", h.ListLikes).Methods(http.MethodGet)
	r.HandleFunc("/tweets/{id}/bookmarks", h.ListBookmarks).Methods(http.MethodGet)

	r.HandleFunc("/likes", h.CreateLike).Methods(http.MethodPost)
	r.HandleFunc("/bookmarks", h.CreateBookmark).Methods(http.MethodPost)

	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}
