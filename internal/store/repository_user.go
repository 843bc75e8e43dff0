package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/internal/utils"
	"github.com/everhold/everhold/models"
)

type userRepository struct {
	*DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// UpsertUserByClerkID inserts or refreshes the mirror row for user.ClerkID.
// A fresh internal user_id is generated for the insert path; when the row
// already exists the conflict clause only refreshes the profile fields, so
// the stored user_id wins and is returned.
func (r *userRepository) UpsertUserByClerkID(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.UserID == "" {
		user.UserID = r.ids.Generate()
	}

	var stored models.User
	err := r.DB.QueryRowContext(ctx, upsertUser,
		user.UserID,
		user.ClerkID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.ImageURL,
	).Scan(
		&stored.UserID,
		&stored.ClerkID,
		&stored.Email,
		&stored.FirstName,
		&stored.LastName,
		&stored.ImageURL,
		&stored.CreatedAt,
		&stored.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.UpsertUserByClerkID").
			Str("clerk_id", user.ClerkID).
			Msg("failed to upsert user mirror row")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stored, nil
}

// FindUserByClerkID returns the mirror row for the given provider key.
func (r *userRepository) FindUserByClerkID(ctx context.Context, clerkID string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.DB.QueryRowContext(ctx, findUserByClerkID, clerkID).Scan(
		&found.UserID,
		&found.ClerkID,
		&found.Email,
		&found.FirstName,
		&found.LastName,
		&found.ImageURL,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.FindUserByClerkID").
			Str("clerk_id", clerkID).
			Msg("failed to query user mirror row")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// DeleteUserByClerkID removes the mirror row; the owner's page and children
// follow via cascading deletes. Unknown clerk_ids are ignored so that
// webhook redeliveries stay idempotent.
func (r *userRepository) DeleteUserByClerkID(ctx context.Context, clerkID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteUserByClerkID, clerkID)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.DeleteUserByClerkID").
			Str("clerk_id", clerkID).
			Msg("failed to delete user mirror row")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		log.Warn().
			Str("func", "userRepository.DeleteUserByClerkID").
			Str("clerk_id", clerkID).
			Msg("no user mirror row matched delete")
	}

	return nil
}
