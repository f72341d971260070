package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-comment-board/internal/service"
	"github.com/MKhiriev/go-comment-board/internal/store"
)

var errorStatusMap = map[error]int{
	ErrMalformedRequest: http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUnauthenticated:     http.StatusUnauthorized,

	store.ErrNameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrCommentNotFound:   http.StatusBadRequest,
	store.ErrCommentNotSaved:   http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
