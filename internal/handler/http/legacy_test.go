package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/everhold/everhold/internal/service"
	"github.com/everhold/everhold/internal/store"
	"github.com/everhold/everhold/models"
)

func TestGetPage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockPages, _ := newTestHandler(ctrl)

	agg := models.PageAggregate{
		LegacyPage: models.LegacyPage{Slug: "grace-hall", HonoureeName: "Grace Hall"},
	}
	mockPages.EXPECT().GetPage(gomock.Any(), "grace-hall").Return(agg, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/legacy/grace-hall", nil)
	rr := serve(h, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got models.PageAggregate
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Grace Hall", got.HonoureeName)
}

func TestGetPage_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockPages, _ := newTestHandler(ctrl)

	mockPages.EXPECT().GetPage(gomock.Any(), "nobody").Return(models.PageAggregate{}, store.ErrPageNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/legacy/nobody", nil)
	rr := serve(h, req)

	require.Equal(t, http.StatusNotFound, rr.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, store.ErrPageNotFound.Error(), body.Error)
}

func TestCreatePage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockPages, _ := newTestHandler(ctrl)

	mockPages.EXPECT().
		CreatePage(gomock.Any(), "clerk-1", gomock.Any()).
		DoAndReturn(func(_ any, _ string, submission models.PageSubmission) (models.PageAggregate, error) {
			assert.Equal(t, "grace-hall", submission.Slug)
			assert.Equal(t, models.PageTypeMemorial, submission.PageType)
			return models.PageAggregate{LegacyPage: models.LegacyPage{Slug: submission.Slug}}, nil
		})

	body, contentType := multipartBody(t, validCreateFields())
	req := httptest.NewRequest(http.MethodPost, "/api/legacy", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+signSessionToken(t, "clerk-1"))

	rr := serve(h, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.PageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "grace-hall", resp.Data.Slug)
}

func TestCreatePage_WithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	body, contentType := multipartBody(t, validCreateFields())
	req := httptest.NewRequest(http.MethodPost, "/api/legacy", body)
	req.Header.Set("Content-Type", contentType)

	rr := serve(h, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreatePage_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	fields := validCreateFields()
	delete(fields, "honoureeName")

	// no service expectation: a submission that fails validation never
	// reaches the service
	body, contentType := multipartBody(t, fields)
	req := httptest.NewRequest(http.MethodPost, "/api/legacy", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+signSessionToken(t, "clerk-1"))

	rr := serve(h, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreatePage_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockPages, _ := newTestHandler(ctrl)

	mockPages.EXPECT().
		CreatePage(gomock.Any(), "clerk-1", gomock.Any()).
		Return(models.PageAggregate{}, store.ErrPageAlreadyExists)

	body, contentType := multipartBody(t, validCreateFields())
	req := httptest.NewRequest(http.MethodPost, "/api/legacy", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+signSessionToken(t, "clerk-1"))

	rr := serve(h, req)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestUpdatePage_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockPages, _ := newTestHandler(ctrl)

	mockPages.EXPECT().
		UpdatePage(gomock.Any(), "clerk-2", "grace-hall", gomock.Any()).
		Return(models.PageAggregate{}, service.ErrNotPageOwner)

	body, contentType := multipartBody(t, validCreateFields())
	req := httptest.NewRequest(http.MethodPut, "/api/legacy/grace-hall", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+signSessionToken(t, "clerk-2"))

	rr := serve(h, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestDeletePage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockPages, _ := newTestHandler(ctrl)

	mockPages.EXPECT().DeletePage(gomock.Any(), "clerk-1", "grace-hall").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/legacy/grace-hall", nil)
	req.Header.Set("Authorization", "Bearer "+signSessionToken(t, "clerk-1"))

	rr := serve(h, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.PageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestCheckPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockPages, _ := newTestHandler(ctrl)

	mockPages.EXPECT().
		CheckUserPage(gomock.Any(), "clerk-1").
		Return(models.CheckPageResponse{HasPage: true, Page: &models.PageRef{Slug: "grace-hall"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/legacy/check", nil)
	req.Header.Set("Authorization", "Bearer "+signSessionToken(t, "clerk-1"))

	rr := serve(h, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var check models.CheckPageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &check))
	assert.True(t, check.HasPage)
	require.NotNil(t, check.Page)
	assert.Equal(t, "grace-hall", check.Page.Slug)
}

func TestCheckPage_WithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/legacy/check", nil)
	rr := serve(h, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := serve(h, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
