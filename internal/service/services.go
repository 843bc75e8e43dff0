package service

import (
	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/internal/storage"
	"github.com/everhold/everhold/internal/store"
)

type Services struct {
	PageService PageService
	UserService UserService
}

func NewServices(storages store.Storages, blobStore storage.BlobStore, logger *logger.Logger) *Services {
	return &Services{
		PageService: NewPageService(storages.PageRepository, storages.UserRepository, blobStore, logger),
		UserService: NewUserService(storages.UserRepository, logger),
	}
}
