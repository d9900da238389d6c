package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName         = errors.New("name is required")
	ErrEmptyText         = errors.New("text is required")
	ErrInvalidSenderID   = errors.New("invalid sender ID")
	ErrInvalidReceiverID = errors.New("invalid receiver ID")
	ErrInvalidMessageID  = errors.New("invalid message ID")
)
