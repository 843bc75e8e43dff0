package service

import (
	"context"
	"fmt"

	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/internal/store"
	"github.com/everhold/everhold/models"
)

// userService mirrors identity-provider accounts into the local users
// table, driven by the webhook channel.
type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// SyncUser applies one identity event to the user mirror.
//
// user.created and user.updated both upsert by clerk ID, so events arriving
// out of order or twice converge on the same row. user.deleted removes the
// mirror; the user's page follows through cascading deletes, and deleting
// an unknown user is a no-op. Unrecognised event types are logged and
// ignored.
func (u *userService) SyncUser(ctx context.Context, event models.WebhookEvent) error {
	log := logger.FromContext(ctx)

	switch event.Type {
	case models.WebhookUserCreated, models.WebhookUserUpdated:
		user := models.User{
			ClerkID:   event.Data.ID,
			Email:     event.Data.PrimaryEmail(),
			FirstName: event.Data.FirstName,
			LastName:  event.Data.LastName,
		}
		if event.Data.ImageURL != "" {
			user.ImageURL = &event.Data.ImageURL
		}

		if _, err := u.userRepository.UpsertUserByClerkID(ctx, user); err != nil {
			log.Err(err).Str("func", "SyncUser").Str("clerk_id", event.Data.ID).Str("event", event.Type).Msg("user mirror upsert failed")
			return fmt.Errorf("user mirror upsert failed: %w", err)
		}

	case models.WebhookUserDeleted:
		if err := u.userRepository.DeleteUserByClerkID(ctx, event.Data.ID); err != nil {
			log.Err(err).Str("func", "SyncUser").Str("clerk_id", event.Data.ID).Msg("user mirror deletion failed")
			return fmt.Errorf("user mirror deletion failed: %w", err)
		}

	default:
		log.Info().Str("func", "SyncUser").Str("event", event.Type).Msg("ignoring unhandled identity event")
	}

	return nil
}
