package service

import (
	"microtweet/internal/config"
	"microtweet/internal/repository"
	"microtweet/internal/storage"
)

type Service struct {
	Tweet    TweetService
	Like     LikeService
	Bookmark BookmarkService
	Tables   TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Tweet:    NewTweetService(rep.Tweet, storage, cfg),
		Like:     NewLikeService(rep.Like, rep.Tweet),
		Bookmark: NewBookmarkService(rep.Bookmark, rep.Tweet),
		Tables:   NewTablesService(rep.Tables),
	}
}
