package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/store"
	"github.com/MKhiriev/go-messenger/models"
)

type messengerService struct {
	storage store.MessageStorage
	now     func() time.Time

	logger *logger.Logger
}

func NewMessengerService(storage store.MessageStorage, logger *logger.Logger) MessengerService {
	return &messengerService{
		storage: storage,
		now:     time.Now,
		logger:  logger,
	}
}

func (m *messengerService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	return m.storage.CreateUser(ctx, req.Name)
}

func (m *messengerService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.storage.ListUsers(ctx)
}

func (m *messengerService) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error) {
	from, err := m.lookupUser(ctx, req.FromID)
	if err != nil {
		return models.Message{}, err
	}
	to, err := m.lookupUser(ctx, req.ToID)
	if err != nil {
		return models.Message{}, err
	}

	msg := models.Message{
		Text:      req.Text,
		FromID:    from.ID,
		ToID:      to.ID,
		FromName:  from.Name,
		ToName:    to.Name,
		IsRead:    false,
		CreatedAt: m.now(),
	}

	created, err := m.storage.CreateMessage(ctx, msg)
	if errors.Is(err, store.ErrUserNotFound) {
		// a user vanished between lookup and insert
		return models.Message{}, fmt.Errorf("%w: %w", ErrSenderOrReceiverNotFound, err)
	}
	if err != nil {
		return models.Message{}, err
	}

	logger.FromContext(ctx).Debug().
		Int64("message_id", created.ID).
		Int64("from_id", created.FromID).
		Int64("to_id", created.ToID).
		Msg("message stored")

	return created, nil
}

func (m *messengerService) lookupUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := m.storage.GetUser(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("%w: user %d", ErrSenderOrReceiverNotFound, userID)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error looking up user %d: %w", userID, err)
	}

	return user, nil
}

func (m *messengerService) ListMessages(ctx context.Context) ([]models.Message, error) {
	return m.storage.ListMessages(ctx)
}

func (m *messengerService) ListInbox(ctx context.Context, userID int64) ([]models.Message, error) {
	return m.storage.ListInbox(ctx, userID)
}

func (m *messengerService) UpdateMessage(ctx context.Context, req models.UpdateMessageRequest) (models.Message, error) {
	return m.storage.UpdateMessage(ctx, req)
}

func (m *messengerService) MarkRead(ctx context.Context, messageID int64) (models.Message, error) {
	return m.storage.MarkRead(ctx, messageID)
}

func (m *messengerService) DeleteMessage(ctx context.Context, messageID int64) error {
	return m.storage.DeleteMessage(ctx, messageID)
}

func (m *messengerService) Health(ctx context.Context) (models.HealthResponse, error) {
	users, messages, err := m.storage.Counts(ctx)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("error counting stored rows: %w", err)
	}

	return models.HealthResponse{
		Status:   models.StatusOK,
		Time:     m.now(),
		Users:    users,
		Messages: messages,
	}, nil
}
