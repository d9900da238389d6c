package store

import (
	"context"

	"github.com/MKhiriev/go-messenger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/message_storage_mock.go -package=mock

// MessageStorage is the persistence contract of the Message Store.
//
// Lists are ordered by ID. Lookups of a missing row return
// [ErrUserNotFound] or [ErrMessageNotFound].
type MessageStorage interface {
	// CreateUser stores a user and returns it with its assigned ID.
	CreateUser(ctx context.Context, name string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// CreateMessage stores msg and returns it with its assigned ID. The
	// caller fills names, CreatedAt and the read flag.
	CreateMessage(ctx context.Context, msg models.Message) (models.Message, error)
	ListMessages(ctx context.Context) ([]models.Message, error)
	// ListInbox returns the messages whose recipient is userID.
	ListInbox(ctx context.Context, userID int64) ([]models.Message, error)
	GetMessage(ctx context.Context, messageID int64) (models.Message, error)
	// UpdateMessage replaces the text when req.Text is non-empty and always
	// sets the read flag to req.IsRead.
	UpdateMessage(ctx context.Context, req models.UpdateMessageRequest) (models.Message, error)
	MarkRead(ctx context.Context, messageID int64) (models.Message, error)
	DeleteMessage(ctx context.Context, messageID int64) error

	// Counts reports the number of stored users and messages.
	Counts(ctx context.Context) (users int, messages int, err error)

	Close() error
}
