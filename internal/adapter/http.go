package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/models"
)

// HTTPClientConfig configures [NewHTTPBoardClient].
type HTTPClientConfig struct {
	// BaseURL is the server address; a missing scheme defaults to http.
	BaseURL string

	// Timeout bounds every request issued by the client.
	Timeout time.Duration
}

type httpBoardClient struct {
	client *resty.Client

	mu       sync.RWMutex
	userID   int64
	password string

	logger *logger.Logger
}

// NewHTTPBoardClient constructs an HTTP implementation of [BoardClient].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPBoardClient(cfg HTTPClientConfig, logger *logger.Logger) (BoardClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid client base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpBoardClient{client: cli, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetCredentials implements [BoardClient].
func (h *httpBoardClient) SetCredentials(id int64, password string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.userID = id
	h.password = strings.TrimSpace(password)
}

// Credentials implements [BoardClient].
func (h *httpBoardClient) Credentials() (int64, string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.userID, h.password
}

// Register implements [BoardClient]. It POSTs the `user` operation and stores
// the server-generated credential pair via SetCredentials.
func (h *httpBoardClient) Register(ctx context.Context, name string) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"op":   "user",
			"name": name,
		}).
		Post("/")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var created models.UserCreatedResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.User{}, fmt.Errorf("decode register response: %w", err)
	}

	h.SetCredentials(created.ID, created.Password)
	h.logger.Debug().Int64("id", created.ID).Msg("registered on board")

	return models.User{ID: created.ID, Name: created.Name, Password: created.Password}, nil
}

// Rename implements [BoardClient]. It POSTs the `username` operation with the
// stored credentials.
func (h *httpBoardClient) Rename(ctx context.Context, newName string) (models.User, error) {
	userID, password, err := h.requireCredentials()
	if err != nil {
		return models.User{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"op":       "username",
			"id":       strconv.FormatInt(userID, 10),
			"password": password,
			"name":     newName,
		}).
		Post("/")
	if err != nil {
		return models.User{}, fmt.Errorf("rename request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var renamed models.UserResponse
	if err = json.Unmarshal(resp.Body(), &renamed); err != nil {
		return models.User{}, fmt.Errorf("decode rename response: %w", err)
	}

	return models.User{ID: renamed.ID, Name: renamed.Name}, nil
}

// PostComment implements [BoardClient]. It POSTs the `comment` operation with
// the stored credentials. The parentId field is always sent, empty when
// parentID is nil, since the server requires its presence.
func (h *httpBoardClient) PostComment(ctx context.Context, itemID int64, parentID *int64, message string) (models.Comment, error) {
	userID, password, err := h.requireCredentials()
	if err != nil {
		return models.Comment{}, err
	}

	parent := ""
	if parentID != nil {
		parent = strconv.FormatInt(*parentID, 10)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"op":           "comment",
			"userId":       strconv.FormatInt(userID, 10),
			"userPassword": password,
			"itemId":       strconv.FormatInt(itemID, 10),
			"parentId":     parent,
			"message":      message,
		}).
		Post("/")
	if err != nil {
		return models.Comment{}, fmt.Errorf("post comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Comment{}, err
	}

	var created models.CommentResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Comment{}, fmt.Errorf("decode post comment response: %w", err)
	}

	return commentFromResponse(created), nil
}

// Comments implements [BoardClient]. It GETs the `comments` operation.
func (h *httpBoardClient) Comments(ctx context.Context, itemID, lastID int64) ([]models.Comment, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"op":     "comments",
			"itemId": strconv.FormatInt(itemID, 10),
			"lastId": strconv.FormatInt(lastID, 10),
		}).
		Get("/")
	if err != nil {
		return nil, fmt.Errorf("comments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var page []models.CommentResponse
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, fmt.Errorf("decode comments response: %w", err)
	}

	comments := make([]models.Comment, 0, len(page))
	for _, c := range page {
		comments = append(comments, commentFromResponse(c))
	}

	return comments, nil
}

func (h *httpBoardClient) requireCredentials() (int64, string, error) {
	userID, password := h.Credentials()
	if userID == 0 || password == "" {
		return 0, "", ErrNoCredentials
	}
	return userID, password, nil
}

func commentFromResponse(c models.CommentResponse) models.Comment {
	return models.Comment{
		ID:       c.ID,
		ItemID:   c.ItemID,
		ParentID: c.ParentID,
		UserID:   c.User.ID,
		Message:  c.Message,
		Time:     int64(c.Time),
		User: models.User{
			ID:   c.User.ID,
			Name: c.User.Name,
		},
	}
}
