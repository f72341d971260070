package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/service"
	"github.com/MKhiriev/go-comment-board/internal/store"
	"github.com/MKhiriev/go-comment-board/internal/utils"
	"github.com/MKhiriev/go-comment-board/models"
)

// Operation selectors carried in the "op" form field.
const (
	opCreateUser    = "user"
	opRenameUser    = "username"
	opCreateComment = "comment"
	opListComments  = "comments"
)

// dispatch is the single entry point of the API. It merges query string and
// form body into one value set, reads the "op" selector, and routes to the
// matching operation handler.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.dispatch").Msg("cannot parse form body")
		http.Error(w, "cannot parse form body", http.StatusBadRequest)
		return
	}

	op := r.Form.Get("op")
	log.Debug().Str("op", op).Msg("dispatching operation")

	// writes are POST-only; the listing operation is GET-only
	switch op {
	case opCreateUser, opRenameUser, opCreateComment:
		if r.Method != http.MethodPost {
			log.Err(ErrMalformedRequest).Str("op", op).Str("method", r.Method).Msg("write operation requires POST")
			http.Error(w, "operation requires POST", http.StatusBadRequest)
			return
		}
	case opListComments:
		if r.Method != http.MethodGet {
			log.Err(ErrMalformedRequest).Str("op", op).Str("method", r.Method).Msg("listing operation requires GET")
			http.Error(w, "operation requires GET", http.StatusBadRequest)
			return
		}
	}

	switch op {
	case opCreateUser:
		h.createUser(w, r, r.Form)
	case opRenameUser:
		h.renameUser(w, r, r.Form)
	case opCreateComment:
		h.createComment(w, r, r.Form)
	case opListComments:
		h.listComments(w, r, r.Form)
	default:
		log.Err(ErrMalformedRequest).Str("op", op).Msg("unknown operation")
		http.Error(w, "unknown operation", http.StatusBadRequest)
	}
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request, values url.Values) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	params, err := parseCreateUserParams(values)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("invalid parameters")
		http.Error(w, "invalid parameters", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserRegistry.Register(ctx, params.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNameAlreadyExists):
			log.Err(err).Msg("name already exists")
			http.Error(w, "name already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", user.ID).Msg("user registered")

	// the one response that ever discloses the credential
	utils.WriteJSON(w, models.NewUserCreatedResponse(user), http.StatusOK)
}

func (h *Handler) renameUser(w http.ResponseWriter, r *http.Request, values url.Values) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	params, err := parseRenameUserParams(values)
	if err != nil {
		log.Err(err).Str("func", "*Handler.renameUser").Msg("invalid parameters")
		http.Error(w, "invalid parameters", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserRegistry.Rename(ctx, params.UserID, params.Password, params.Name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.renameUser").Msg("error renaming user")
		http.Error(w, "error renaming user", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.NewUserResponse(user), http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request, values url.Values) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	params, err := parseCreateCommentParams(values)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createComment").Msg("invalid parameters")
		http.Error(w, "invalid parameters", http.StatusBadRequest)
		return
	}

	comment, err := h.services.CommentLedger.CreateComment(ctx, models.CommentDraft{
		ItemID:   params.ItemID,
		ParentID: params.ParentID,
		UserID:   params.UserID,
		Password: params.Password,
		Message:  params.Message,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.createComment").Msg("error creating comment")
		http.Error(w, "error creating comment", statusFromError(err))
		return
	}

	log.Debug().Int64("id", comment.ID).Int64("item_id", comment.ItemID).Msg("comment created")

	utils.WriteJSON(w, models.NewCommentResponse(comment), http.StatusOK)
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request, values url.Values) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	params, err := parseListCommentsParams(values)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listComments").Msg("invalid parameters")
		http.Error(w, "invalid parameters", http.StatusBadRequest)
		return
	}

	comments, err := h.services.CommentLedger.ListComments(ctx, params.ItemID, params.LastCommentID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listComments").Msg("error listing comments")
		http.Error(w, "error listing comments", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.NewCommentsResponse(comments), http.StatusOK)
}
