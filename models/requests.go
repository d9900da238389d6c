// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name string `json:"name"`
}

// SendMessageRequest is the body of POST /messages.
type SendMessageRequest struct {
	Text   string `json:"text"`
	FromID int64  `json:"from_id"`
	ToID   int64  `json:"to_id"`
}

// UpdateMessageRequest is the body of PATCH /messages/{id}.
//
// Text is applied only when non-empty. IsRead always overwrites the stored
// flag, which is how the original store behaves.
type UpdateMessageRequest struct {
	// ID is taken from the URL, never from the body.
	ID     int64  `json:"-"`
	Text   string `json:"text"`
	IsRead bool   `json:"is_read"`
}
