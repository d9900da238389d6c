// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-messenger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/message_store_adapter_mock.go -package=mock

// MessageStoreAdapter is the client view of the Message Store REST contract.
// Every method is a single round trip; nothing is retried.
type MessageStoreAdapter interface {
	// ListUsers fetches all users (GET /users).
	ListUsers(ctx context.Context) ([]models.User, error)

	// ListInbox fetches the messages addressed to userID
	// (GET /messages/user/{userID}).
	ListInbox(ctx context.Context, userID int64) ([]models.Message, error)

	// CreateUser registers a new user named name (POST /users).
	CreateUser(ctx context.Context, name string) (models.User, error)

	// SendMessage posts a message (POST /messages).
	SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error)

	// MarkRead sets the read flag of a message (PATCH /messages/{id}/read).
	MarkRead(ctx context.Context, messageID int64) error
}
