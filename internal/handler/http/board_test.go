// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/service"
	"github.com/MKhiriev/go-comment-board/internal/store"
	"github.com/MKhiriev/go-comment-board/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockUserRegistry implements service.UserRegistry for unit tests.
// Each method field can be overridden per test case.
type mockUserRegistry struct {
	registerFn     func(ctx context.Context, name string) (models.User, error)
	authenticateFn func(ctx context.Context, id int64, password string) (models.User, error)
	renameFn       func(ctx context.Context, id int64, password, newName string) (models.User, error)
}

func (m *mockUserRegistry) Register(ctx context.Context, name string) (models.User, error) {
	return m.registerFn(ctx, name)
}

func (m *mockUserRegistry) Authenticate(ctx context.Context, id int64, password string) (models.User, error) {
	return m.authenticateFn(ctx, id, password)
}

func (m *mockUserRegistry) Rename(ctx context.Context, id int64, password, newName string) (models.User, error) {
	return m.renameFn(ctx, id, password, newName)
}

// mockCommentLedger implements service.CommentLedger for unit tests.
type mockCommentLedger struct {
	createCommentFn func(ctx context.Context, draft models.CommentDraft) (models.Comment, error)
	listCommentsFn  func(ctx context.Context, itemID, lastCommentID int64) ([]models.Comment, error)
}

func (m *mockCommentLedger) CreateComment(ctx context.Context, draft models.CommentDraft) (models.Comment, error) {
	return m.createCommentFn(ctx, draft)
}

func (m *mockCommentLedger) ListComments(ctx context.Context, itemID, lastCommentID int64) ([]models.Comment, error) {
	return m.listCommentsFn(ctx, itemID, lastCommentID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newBoardHandler builds a Handler over the given service mocks.
func newBoardHandler(t *testing.T, registry service.UserRegistry, ledger service.CommentLedger) *Handler {
	t.Helper()
	svcs := &service.Services{
		UserRegistry:  registry,
		CommentLedger: ledger,
	}
	return NewHandler(svcs, logger.Nop())
}

// postForm performs a form-encoded POST against the handler's router.
func postForm(t *testing.T, h *Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// getQuery performs a GET with the given query values against the router.
func getQuery(t *testing.T, h *Handler, query url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/?"+query.Encode(), nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// decodeJSONMap decodes the recorder's body into a generic map for
// field-level assertions on the wire format.
func decodeJSONMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

// ─────────────────────────────────────────────
// op=user — registration
// ─────────────────────────────────────────────

func TestDispatch_CreateUser_Success(t *testing.T) {
	registry := &mockUserRegistry{
		registerFn: func(_ context.Context, name string) (models.User, error) {
			return models.User{ID: 1, Name: name, Password: "deadbeefdeadbeefdeadbeefdeadbeef"}, nil
		},
	}
	h := newBoardHandler(t, registry, &mockCommentLedger{})

	rec := postForm(t, h, url.Values{"op": {"user"}, "name": {"alice"}})

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSONMap(t, rec)
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "alice", body["name"])
	// the credential is disclosed here and nowhere else
	assert.Equal(t, "deadbeefdeadbeefdeadbeefdeadbeef", body["password"])
}

func TestDispatch_CreateUser_MissingName(t *testing.T) {
	h := newBoardHandler(t, &mockUserRegistry{}, &mockCommentLedger{})

	rec := postForm(t, h, url.Values{"op": {"user"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDispatch_CreateUser_DuplicateName(t *testing.T) {
	registry := &mockUserRegistry{
		registerFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNameAlreadyExists
		},
	}
	h := newBoardHandler(t, registry, &mockCommentLedger{})

	rec := postForm(t, h, url.Values{"op": {"user"}, "name": {"alice"}})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ─────────────────────────────────────────────
// op=username — rename
// ─────────────────────────────────────────────

func TestDispatch_RenameUser_Success(t *testing.T) {
	registry := &mockUserRegistry{
		renameFn: func(_ context.Context, id int64, password, newName string) (models.User, error) {
			assert.Equal(t, int64(1), id)
			assert.Equal(t, "secret", password)
			return models.User{ID: id, Name: newName, Password: password}, nil
		},
	}
	h := newBoardHandler(t, registry, &mockCommentLedger{})

	rec := postForm(t, h, url.Values{
		"op": {"username"}, "id": {"1"}, "password": {"secret"}, "name": {"bob"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSONMap(t, rec)
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "bob", body["name"])
	assert.NotContains(t, body, "password")
}

func TestDispatch_RenameUser_Unauthenticated(t *testing.T) {
	registry := &mockUserRegistry{
		renameFn: func(_ context.Context, _ int64, _, _ string) (models.User, error) {
			return models.User{}, service.ErrUnauthenticated
		},
	}
	h := newBoardHandler(t, registry, &mockCommentLedger{})

	rec := postForm(t, h, url.Values{
		"op": {"username"}, "id": {"1"}, "password": {"wrong"}, "name": {"bob"},
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDispatch_RenameUser_NonIntegerID(t *testing.T) {
	h := newBoardHandler(t, &mockUserRegistry{}, &mockCommentLedger{})

	rec := postForm(t, h, url.Values{
		"op": {"username"}, "id": {"abc"}, "password": {"secret"}, "name": {"bob"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// op=comment — creation
// ─────────────────────────────────────────────

func TestDispatch_CreateComment_Success(t *testing.T) {
	ledger := &mockCommentLedger{
		createCommentFn: func(_ context.Context, draft models.CommentDraft) (models.Comment, error) {
			assert.Equal(t, int64(100), draft.ItemID)
			assert.Equal(t, "hello", draft.Message)
			return models.Comment{
				ID:      42,
				ItemID:  draft.ItemID,
				UserID:  draft.UserID,
				Message: draft.Message,
				Time:    1700000000,
				User:    models.User{ID: draft.UserID, Name: "alice", Password: "secret"},
			}, nil
		},
	}
	h := newBoardHandler(t, &mockUserRegistry{}, ledger)

	rec := postForm(t, h, url.Values{
		"op": {"comment"}, "userId": {"7"}, "userPassword": {"secret"},
		"itemId": {"100"}, "parentId": {""}, "message": {"hello"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSONMap(t, rec)
	assert.EqualValues(t, 42, body["id"])
	assert.EqualValues(t, 100, body["itemId"])
	assert.Nil(t, body["parentId"])
	assert.EqualValues(t, 1700000000, body["time"])
	assert.Equal(t, "hello", body["message"])

	author, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 7, author["id"])
	assert.Equal(t, "alice", author["name"])
	assert.NotContains(t, author, "password")
}

func TestDispatch_CreateComment_NumericParent(t *testing.T) {
	ledger := &mockCommentLedger{
		createCommentFn: func(_ context.Context, draft models.CommentDraft) (models.Comment, error) {
			require.NotNil(t, draft.ParentID)
			assert.Equal(t, int64(9), *draft.ParentID)
			return models.Comment{ID: 43, ItemID: draft.ItemID, Time: 1700000001}, nil
		},
	}
	h := newBoardHandler(t, &mockUserRegistry{}, ledger)

	rec := postForm(t, h, url.Values{
		"op": {"comment"}, "userId": {"7"}, "userPassword": {"secret"},
		"itemId": {"100"}, "parentId": {"9"}, "message": {"a reply"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDispatch_CreateComment_MissingParentField(t *testing.T) {
	h := newBoardHandler(t, &mockUserRegistry{}, &mockCommentLedger{})

	rec := postForm(t, h, url.Values{
		"op": {"comment"}, "userId": {"7"}, "userPassword": {"secret"},
		"itemId": {"100"}, "message": {"hello"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDispatch_CreateComment_Unauthenticated(t *testing.T) {
	ledger := &mockCommentLedger{
		createCommentFn: func(_ context.Context, _ models.CommentDraft) (models.Comment, error) {
			return models.Comment{}, service.ErrUnauthenticated
		},
	}
	h := newBoardHandler(t, &mockUserRegistry{}, ledger)

	rec := postForm(t, h, url.Values{
		"op": {"comment"}, "userId": {"7"}, "userPassword": {"wrong"},
		"itemId": {"100"}, "parentId": {""}, "message": {"hello"},
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// op=comments — listing
// ─────────────────────────────────────────────

func TestDispatch_ListComments_Success(t *testing.T) {
	ledger := &mockCommentLedger{
		listCommentsFn: func(_ context.Context, itemID, lastCommentID int64) ([]models.Comment, error) {
			assert.Equal(t, int64(100), itemID)
			assert.Equal(t, int64(5), lastCommentID)
			return []models.Comment{
				{ID: 6, ItemID: 100, Message: "newer", Time: 1700000010, User: models.User{ID: 1, Name: "alice"}},
				{ID: 7, ItemID: 100, Message: "newest", Time: 1700000020, User: models.User{ID: 2, Name: "bob"}},
			}, nil
		},
	}
	h := newBoardHandler(t, &mockUserRegistry{}, ledger)

	rec := getQuery(t, h, url.Values{
		"op": {"comments"}, "itemId": {"100"}, "lastId": {"5"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var page []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page, 2)
	assert.EqualValues(t, 6, page[0]["id"])
	assert.EqualValues(t, 7, page[1]["id"])
}

func TestDispatch_ListComments_EmptyPageIsJSONArray(t *testing.T) {
	ledger := &mockCommentLedger{
		listCommentsFn: func(_ context.Context, _, _ int64) ([]models.Comment, error) {
			return []models.Comment{}, nil
		},
	}
	h := newBoardHandler(t, &mockUserRegistry{}, ledger)

	rec := getQuery(t, h, url.Values{
		"op": {"comments"}, "itemId": {"100"}, "lastId": {"0"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestDispatch_ListComments_UnknownCursor(t *testing.T) {
	ledger := &mockCommentLedger{
		listCommentsFn: func(_ context.Context, _, _ int64) ([]models.Comment, error) {
			return nil, store.ErrCommentNotFound
		},
	}
	h := newBoardHandler(t, &mockUserRegistry{}, ledger)

	rec := getQuery(t, h, url.Values{
		"op": {"comments"}, "itemId": {"100"}, "lastId": {"999"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDispatch_ListComments_MissingCursor(t *testing.T) {
	h := newBoardHandler(t, &mockUserRegistry{}, &mockCommentLedger{})

	rec := getQuery(t, h, url.Values{"op": {"comments"}, "itemId": {"100"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// dispatch — protocol errors
// ─────────────────────────────────────────────

func TestDispatch_UnknownOp(t *testing.T) {
	h := newBoardHandler(t, &mockUserRegistry{}, &mockCommentLedger{})

	rec := postForm(t, h, url.Values{"op": {"bogus"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDispatch_MissingOp(t *testing.T) {
	h := newBoardHandler(t, &mockUserRegistry{}, &mockCommentLedger{})

	rec := postForm(t, h, url.Values{"name": {"alice"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDispatch_UnsupportedMethod(t *testing.T) {
	h := newBoardHandler(t, &mockUserRegistry{}, &mockCommentLedger{})

	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// op selectors are accepted from the query string on POST as well, matching
// form decoding that merges both sources.
func TestDispatch_OpFromQueryOnPost(t *testing.T) {
	registry := &mockUserRegistry{
		registerFn: func(_ context.Context, name string) (models.User, error) {
			return models.User{ID: 1, Name: name, Password: "c"}, nil
		},
	}
	h := newBoardHandler(t, registry, &mockCommentLedger{})

	req := httptest.NewRequest(http.MethodPost, "/?op=user", strings.NewReader("name=alice"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// The comment operation authenticates with userId/userPassword, not the
// id/password pair the username operation uses.
func TestDispatch_CreateComment_RejectsRenameStyleCredentialFields(t *testing.T) {
	ledger := &mockCommentLedger{
		createCommentFn: func(_ context.Context, _ models.CommentDraft) (models.Comment, error) {
			t.Fatal("ledger must not be reached with misnamed credential fields")
			return models.Comment{}, nil
		},
	}
	h := newBoardHandler(t, &mockUserRegistry{}, ledger)

	rec := postForm(t, h, url.Values{
		"op": {"comment"}, "id": {"7"}, "password": {"secret"},
		"itemId": {"100"}, "parentId": {""}, "message": {"hello"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDispatch_WriteOpsRejectedOverGET(t *testing.T) {
	registry := &mockUserRegistry{
		registerFn: func(_ context.Context, _ string) (models.User, error) {
			t.Fatal("registry must not be reached over GET")
			return models.User{}, nil
		},
	}
	h := newBoardHandler(t, registry, &mockCommentLedger{})

	for _, op := range []string{"user", "username", "comment"} {
		t.Run(op, func(t *testing.T) {
			rec := getQuery(t, h, url.Values{
				"op": {op}, "name": {"alice"},
				"id": {"1"}, "password": {"secret"},
				"userId": {"1"}, "userPassword": {"secret"},
				"itemId": {"100"}, "parentId": {""}, "message": {"hello"},
			})

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDispatch_ListCommentsRejectedOverPOST(t *testing.T) {
	ledger := &mockCommentLedger{
		listCommentsFn: func(_ context.Context, _, _ int64) ([]models.Comment, error) {
			t.Fatal("ledger must not be reached over POST")
			return nil, nil
		},
	}
	h := newBoardHandler(t, &mockUserRegistry{}, ledger)

	rec := postForm(t, h, url.Values{
		"op": {"comments"}, "itemId": {"100"}, "lastId": {"0"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
