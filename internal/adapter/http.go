package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-messenger/internal/config"
	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/utils"
	"github.com/MKhiriev/go-messenger/models"
	"github.com/go-resty/resty/v2"
)

type httpMessageStoreAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPMessageStoreAdapter constructs the REST implementation of
// [MessageStoreAdapter]. It normalises adapterCfg.HTTPAddress into a base URL
// and configures the request timeout.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPMessageStoreAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (MessageStoreAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("message store response")
		return nil
	})

	return &httpMessageStoreAdapter{client: client, logger: log}, nil
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

// ListUsers implements [MessageStoreAdapter].
func (h *httpMessageStoreAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&users).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// ListInbox implements [MessageStoreAdapter].
func (h *httpMessageStoreAdapter) ListInbox(ctx context.Context, userID int64) ([]models.Message, error) {
	var messages []models.Message

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("userID", strconv.FormatInt(userID, 10)).
		SetResult(&messages).
		Get("/messages/user/{userID}")
	if err != nil {
		return nil, fmt.Errorf("list inbox request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return messages, nil
}

// CreateUser implements [MessageStoreAdapter].
func (h *httpMessageStoreAdapter) CreateUser(ctx context.Context, name string) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateUserRequest{Name: name}).
		SetResult(&created).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// SendMessage implements [MessageStoreAdapter].
func (h *httpMessageStoreAdapter) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error) {
	var sent models.Message

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&sent).
		Post("/messages")
	if err != nil {
		return models.Message{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	return sent, nil
}

// MarkRead implements [MessageStoreAdapter].
func (h *httpMessageStoreAdapter) MarkRead(ctx context.Context, messageID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("messageID", strconv.FormatInt(messageID, 10)).
		Patch("/messages/{messageID}/read")
	if err != nil {
		return fmt.Errorf("mark read request: %w", err)
	}

	return mapHTTPError(resp)
}
