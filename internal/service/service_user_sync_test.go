package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/internal/mock"
	"github.com/everhold/everhold/models"
)

func newTestUserSvc(ctrl *gomock.Controller) (UserService, *mock.MockUserRepository) {
	mockUsers := mock.NewMockUserRepository(ctrl)
	return NewUserService(mockUsers, logger.Nop()), mockUsers
}

func TestUserService_SyncUser_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(ctrl)
	ctx := context.Background()

	event := models.WebhookEvent{
		Type: models.WebhookUserCreated,
		Data: models.WebhookEventData{
			ID:             "clerk-1",
			EmailAddresses: []models.WebhookEmailAddress{{EmailAddress: "tom@example.com"}},
			FirstName:      "Tom",
			LastName:       "Hall",
			ImageURL:       "https://img.clerk.com/tom",
		},
	}

	imageURL := "https://img.clerk.com/tom"
	mockUsers.EXPECT().
		UpsertUserByClerkID(ctx, models.User{
			ClerkID:   "clerk-1",
			Email:     "tom@example.com",
			FirstName: "Tom",
			LastName:  "Hall",
			ImageURL:  &imageURL,
		}).
		Return(models.User{UserID: "uid-1"}, nil)

	assert.NoError(t, svc.SyncUser(ctx, event))
}

func TestUserService_SyncUser_UpdatedWithoutImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(ctrl)
	ctx := context.Background()

	event := models.WebhookEvent{
		Type: models.WebhookUserUpdated,
		Data: models.WebhookEventData{ID: "clerk-1", FirstName: "Thomas"},
	}

	mockUsers.EXPECT().
		UpsertUserByClerkID(ctx, models.User{ClerkID: "clerk-1", FirstName: "Thomas"}).
		Return(models.User{UserID: "uid-1"}, nil)

	assert.NoError(t, svc.SyncUser(ctx, event))
}

func TestUserService_SyncUser_Deleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(ctrl)
	ctx := context.Background()

	event := models.WebhookEvent{
		Type: models.WebhookUserDeleted,
		Data: models.WebhookEventData{ID: "clerk-1"},
	}

	mockUsers.EXPECT().DeleteUserByClerkID(ctx, "clerk-1").Return(nil)

	assert.NoError(t, svc.SyncUser(ctx, event))
}

func TestUserService_SyncUser_IgnoresUnknownEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(ctrl)

	event := models.WebhookEvent{Type: "session.created"}
	assert.NoError(t, svc.SyncUser(context.Background(), event))
}

func TestUserService_SyncUser_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(ctrl)
	ctx := context.Background()

	boom := errors.New("connection reset")
	mockUsers.EXPECT().UpsertUserByClerkID(ctx, gomock.Any()).Return(models.User{}, boom)

	err := svc.SyncUser(ctx, models.WebhookEvent{
		Type: models.WebhookUserCreated,
		Data: models.WebhookEventData{ID: "clerk-1"},
	})
	assert.ErrorIs(t, err, boom)
}
