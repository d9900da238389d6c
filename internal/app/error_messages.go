// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// Message Store handlers and by the client when it interprets their
// responses.
//
// All Msg* constants are human-readable strings written into the "message"
// field of error response bodies. Keeping them in one place keeps the
// wording identical on both sides of the wire.
package app

const (
	// MsgCouldNotAddUser is returned when a create-user body cannot be
	// decoded or carries an empty name.
	MsgCouldNotAddUser = "Could not add the user"

	// MsgCouldNotAddMessage is returned when a send-message body cannot be
	// decoded or carries empty text.
	MsgCouldNotAddMessage = "Could not add the message"

	// MsgSenderOrReceiverNotFound is returned when from_id or to_id does not
	// name an existing user.
	MsgSenderOrReceiverNotFound = "Sender or receiver not found"

	// MsgCouldNotUpdateMessage is returned when an update body cannot be
	// decoded.
	MsgCouldNotUpdateMessage = "Could not update the message"

	// MsgInvalidUserID is returned when the {id} of an inbox route is not a
	// number.
	MsgInvalidUserID = "Invalid user id"

	// MsgInvalidMessageID is returned when the {id} of a message route is
	// not a number.
	MsgInvalidMessageID = "Invalid message ID"

	// MsgMessageNotFound is returned when no message has the requested ID.
	MsgMessageNotFound = "Message not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
