package http

import (
	"errors"
	"net/http"

	"github.com/everhold/everhold/internal/form"
	"github.com/everhold/everhold/internal/service"
	"github.com/everhold/everhold/internal/storage"
	"github.com/everhold/everhold/internal/store"
)

var errorStatusMap = map[error]int{
	form.ErrValidation: http.StatusBadRequest,

	service.ErrNoSession:    http.StatusUnauthorized,
	service.ErrNotPageOwner: http.StatusForbidden,

	store.ErrUserNotFound:             http.StatusNotFound,
	store.ErrPageNotFound:             http.StatusNotFound,
	store.ErrPageAlreadyExists:        http.StatusConflict,
	store.ErrSlugAlreadyExists:        http.StatusConflict,
	store.ErrPassingWithoutTransition: http.StatusBadRequest,

	storage.ErrUpload: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicErrorMessage maps an error to the message exposed in the response
// body. Validation failures keep their field detail; everything mapped to a
// 5xx status is replaced with a generic message so internals never leak.
func publicErrorMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	if errors.Is(err, form.ErrValidation) {
		return err.Error()
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(status)
}
