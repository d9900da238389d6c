package service

import (
	"context"

	"github.com/MKhiriev/go-messenger/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock/services_mock.go -package=mock

// MessengerService is the Message Store business API used by the HTTP
// handlers.
type MessengerService interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// SendMessage resolves sender and receiver names, stamps the creation
	// time and stores the message unread.
	SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error)
	ListMessages(ctx context.Context) ([]models.Message, error)
	ListInbox(ctx context.Context, userID int64) ([]models.Message, error)
	UpdateMessage(ctx context.Context, req models.UpdateMessageRequest) (models.Message, error)
	MarkRead(ctx context.Context, messageID int64) (models.Message, error)
	DeleteMessage(ctx context.Context, messageID int64) error

	Health(ctx context.Context) (models.HealthResponse, error)
}

// MessengerServiceWrapper defines middleware composition for
// MessengerService. Implementations wrap an existing MessengerService to add
// behavior such as validation.
type MessengerServiceWrapper interface {
	Wrap(MessengerService) MessengerService
}
