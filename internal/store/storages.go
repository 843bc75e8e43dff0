package store

import "github.com/everhold/everhold/internal/logger"

type Storages struct {
	UserRepository UserRepository
	PageRepository PageRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		PageRepository: NewPageRepository(db, logger),
	}
}
