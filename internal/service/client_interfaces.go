package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-messenger/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=mock/client_services_mock.go -package=mock

// Operation names carried by [Failure.Op]. OpActivateUser names a user
// switch, whose inbox refresh reports failures as OpRefreshMessages.
const (
	OpRefreshUsers    = "refresh users"
	OpRefreshMessages = "refresh messages"
	OpCreateUser      = "create user"
	OpSendMessage     = "send message"
	OpMarkRead        = "mark read"
	OpActivateUser    = "activate user"
)

// Failure describes a Message Store round trip that did not succeed. The
// session is left as it was before the call.
type Failure struct {
	Op  string
	Err error
}

// FailureObserver is notified about every failed round trip.
type FailureObserver func(Failure)

// ClientMessengerService keeps the client session in step with the Message
// Store.
//
// Remote operations never retry. On failure they keep the session untouched,
// log a warning, notify the [FailureObserver] and return the mapped error.
// Skipped operations (nothing to send, no active user) return nil without
// issuing a request.
type ClientMessengerService interface {
	// RefreshUsers replaces the user list. When no user is active and the
	// list is non-empty, the first user becomes active.
	RefreshUsers(ctx context.Context) error
	// RefreshMessages replaces the inbox of the active user. A response that
	// arrives after the active user changed is dropped.
	RefreshMessages(ctx context.Context) error
	// CreateUser registers name unless it is blank, then refreshes users.
	CreateUser(ctx context.Context, name string) error
	// SendMessage sends text from the active user to the selected recipient,
	// then refreshes messages.
	SendMessage(ctx context.Context, text string) error
	// MarkRead flags a message read and refreshes messages once, whatever
	// the outcome of the update.
	MarkRead(ctx context.Context, messageID int64) error

	// SetActiveUser switches identity. The inbox is cleared at once and
	// polling restarts for the new user.
	SetActiveUser(userID int64)
	ClearActiveUser()
	// SelectRecipient picks a known user other than the active one.
	SelectRecipient(userID int64) bool
	ClearRecipient()
	SetDraftName(name string)
	SetDraftText(text string)

	// Session returns a copy of the current state.
	Session() models.Session
	// Changes delivers a signal after every state change. Signals that are
	// not consumed in time are coalesced.
	Changes() <-chan struct{}
	OnFailure(observer FailureObserver)
	PollInterval() time.Duration

	// Close stops polling. Later switches of the active user do not start it
	// again.
	Close()
}

// InboxPoller refreshes the inbox on a ticker while a user is active.
type InboxPoller interface {
	// Start replaces any running job: it refreshes once, then on every tick.
	Start(ctx context.Context, userID int64, interval time.Duration)
	// Stop cancels the running job and waits for it to exit.
	Stop()
	Running() bool
}

type inboxRefresher interface {
	RefreshMessages(ctx context.Context) error
}
