// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/MKhiriev/go-messenger/internal/adapter"
	"github.com/MKhiriev/go-messenger/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The transport error stays in the chain for logging.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	var netErr net.Error
	switch {
	case errors.As(err, &netErr):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgCouldNotAddUser:
			return fmt.Errorf("%w: %w", ErrEmptyName, err)
		case app.MsgCouldNotAddMessage:
			return fmt.Errorf("%w: %w", ErrEmptyText, err)
		case app.MsgSenderOrReceiverNotFound:
			return fmt.Errorf("%w: %w", ErrSenderOrReceiverNotFound, err)
		}
		return fmt.Errorf("%w: %w", ErrRejectedByServer, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrMessageNotFound, err)

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
