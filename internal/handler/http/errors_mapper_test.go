package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-comment-board/internal/service"
	"github.com/MKhiriev/go-comment-board/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"malformed request", ErrMalformedRequest, http.StatusBadRequest},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized},
		{"duplicate name", store.ErrNameAlreadyExists, http.StatusConflict},
		{"no user", store.ErrNoUserWasFound, http.StatusNotFound},
		{"unknown cursor", store.ErrCommentNotFound, http.StatusBadRequest},
		{"store internals", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unmapped error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("outer: %w", service.ErrUnauthenticated), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
