package handlers

import (
	"github.com/go-playground/validator/v10"

	"microtweet/internal/config"
	"microtweet/internal/service"
)

type Handlers struct {
	TweetService    service.TweetService
	LikeService     service.LikeService
	BookmarkService service.BookmarkService
	TablesService   service.TablesService
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		TweetService:    service.Tweet,
		LikeService:     service.Like,
		BookmarkService: service.Bookmark,
		TablesService:   service.Tables,
		Cfg:             config,
		Validate:        validator.New(),
	}
}

const defaultMaxUploadSize = 10 << 20

func (h *Handlers) maxUploadSize() int64 {
	if h.Cfg == nil || h.Cfg.MaxUploadSize <= 0 {
		return defaultMaxUploadSize
	}
	return h.Cfg.MaxUploadSize
}
