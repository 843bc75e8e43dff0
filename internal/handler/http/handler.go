package http

import (
	"context"

	"github.com/everhold/everhold/internal/config"
	"github.com/everhold/everhold/internal/form"
	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/internal/service"
)

// Pinger reports whether the backing database is reachable. Implemented by
// [store.DB].
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services

	// auth carries the session token verification and webhook signing
	// settings.
	auth config.Auth

	// db is pinged by the health endpoint.
	db Pinger

	// materializer turns parsed multipart forms into typed submissions.
	materializer *form.Materializer

	logger *logger.Logger
}

func NewHandler(services *service.Services, authCfg config.Auth, db Pinger, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		auth:         authCfg,
		db:           db,
		materializer: form.NewMaterializer(),
		logger:       logger,
	}
}
