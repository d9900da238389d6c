package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-messenger/internal/adapter"
	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/models"
)

type clientMessengerService struct {
	adapter      adapter.MessageStoreAdapter
	poller       InboxPoller
	pollInterval time.Duration

	// ctx bounds the poller; Close cancels it
	ctx    context.Context
	cancel context.CancelFunc

	// transition serializes active-user switches together with the poller
	// start or stop that follows them
	transition sync.Mutex

	mu       sync.Mutex
	session  models.Session
	observer FailureObserver
	closed   bool

	changes chan struct{}

	logger *logger.Logger
}

// NewClientMessengerService creates the controller with no active user and
// an idle inbox poller. A non-positive pollInterval means
// DefaultPollInterval.
func NewClientMessengerService(storeAdapter adapter.MessageStoreAdapter, pollInterval time.Duration, logger *logger.Logger) ClientMessengerService {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &clientMessengerService{
		adapter:      storeAdapter,
		pollInterval: pollInterval,
		ctx:          ctx,
		cancel:       cancel,
		changes:      make(chan struct{}, 1),
		logger:       logger,
	}
	c.poller = NewInboxPoller(c, logger)

	return c
}

func (c *clientMessengerService) RefreshUsers(ctx context.Context) error {
	users, err := c.adapter.ListUsers(ctx)
	if err != nil {
		return c.fail(OpRefreshUsers, err)
	}

	c.mu.Lock()
	c.session.Users = users
	c.mu.Unlock()
	c.notify()

	if len(users) == 0 {
		return nil
	}

	first := users[0].ID
	c.switchActiveUser(func(current int64) (int64, bool) {
		if current != models.NoUser {
			return current, false
		}
		return first, true
	})

	return nil
}

func (c *clientMessengerService) RefreshMessages(ctx context.Context) error {
	c.mu.Lock()
	userID := c.session.ActiveUserID
	c.mu.Unlock()

	if userID == models.NoUser {
		return nil
	}

	messages, err := c.adapter.ListInbox(ctx, userID)
	if err != nil {
		if ctx.Err() != nil {
			// polling for this user was stopped
			return nil
		}
		return c.fail(OpRefreshMessages, err)
	}

	c.mu.Lock()
	if c.session.ActiveUserID != userID {
		c.mu.Unlock()
		c.logger.Debug().
			Int64("user_id", userID).
			Msg("dropping inbox of a user that is no longer active")
		return nil
	}
	c.session.Messages = messages
	c.mu.Unlock()
	c.notify()

	return nil
}

func (c *clientMessengerService) CreateUser(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}

	if _, err := c.adapter.CreateUser(ctx, name); err != nil {
		return c.fail(OpCreateUser, err)
	}

	c.mu.Lock()
	c.session.DraftName = ""
	c.mu.Unlock()
	c.notify()

	return c.RefreshUsers(ctx)
}

func (c *clientMessengerService) SendMessage(ctx context.Context, text string) error {
	c.mu.Lock()
	fromID := c.session.ActiveUserID
	recipient := c.session.SelectedRecipient
	c.mu.Unlock()

	if recipient == nil || strings.TrimSpace(text) == "" || fromID == models.NoUser {
		return nil
	}

	req := models.SendMessageRequest{
		Text:   text,
		FromID: fromID,
		ToID:   recipient.ID,
	}
	if _, err := c.adapter.SendMessage(ctx, req); err != nil {
		return c.fail(OpSendMessage, err)
	}

	c.mu.Lock()
	c.session.DraftText = ""
	c.mu.Unlock()
	c.notify()

	return c.RefreshMessages(ctx)
}

func (c *clientMessengerService) MarkRead(ctx context.Context, messageID int64) error {
	var markErr error
	if err := c.adapter.MarkRead(ctx, messageID); err != nil {
		markErr = c.fail(OpMarkRead, err)
	}

	return errors.Join(markErr, c.RefreshMessages(ctx))
}

func (c *clientMessengerService) SetActiveUser(userID int64) {
	c.switchActiveUser(func(int64) (int64, bool) {
		return userID, true
	})
}

func (c *clientMessengerService) ClearActiveUser() {
	c.switchActiveUser(func(int64) (int64, bool) {
		return models.NoUser, true
	})
}

// switchActiveUser applies the identity chosen by decide. The inbox is
// cleared under the same lock that changes the identity, so it never shows
// messages of another user. The poller follows the new identity.
func (c *clientMessengerService) switchActiveUser(decide func(current int64) (next int64, ok bool)) {
	c.transition.Lock()
	defer c.transition.Unlock()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	next, ok := decide(c.session.ActiveUserID)
	if !ok || next == c.session.ActiveUserID {
		c.mu.Unlock()
		return
	}
	c.session.ActiveUserID = next
	c.session.Messages = nil
	if c.session.SelectedRecipient != nil && c.session.SelectedRecipient.ID == next {
		c.session.SelectedRecipient = nil
	}
	c.mu.Unlock()
	c.notify()

	c.logger.Info().Int64("user_id", next).Msg("active user changed")

	if next == models.NoUser {
		c.poller.Stop()
		return
	}
	c.poller.Start(c.ctx, next, c.pollInterval)
}

func (c *clientMessengerService) SelectRecipient(userID int64) bool {
	c.mu.Lock()
	user, found := c.session.FindUser(userID)
	if !found || userID == c.session.ActiveUserID {
		c.mu.Unlock()
		return false
	}
	c.session.SelectedRecipient = &user
	c.mu.Unlock()
	c.notify()

	return true
}

func (c *clientMessengerService) ClearRecipient() {
	c.mu.Lock()
	c.session.SelectedRecipient = nil
	c.mu.Unlock()
	c.notify()
}

func (c *clientMessengerService) SetDraftName(name string) {
	c.mu.Lock()
	c.session.DraftName = name
	c.mu.Unlock()
	c.notify()
}

func (c *clientMessengerService) SetDraftText(text string) {
	c.mu.Lock()
	c.session.DraftText = text
	c.mu.Unlock()
	c.notify()
}

func (c *clientMessengerService) Session() models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.session
	snapshot.Users = slices.Clone(c.session.Users)
	snapshot.Messages = slices.Clone(c.session.Messages)
	if c.session.SelectedRecipient != nil {
		recipient := *c.session.SelectedRecipient
		snapshot.SelectedRecipient = &recipient
	}

	return snapshot
}

func (c *clientMessengerService) Changes() <-chan struct{} {
	return c.changes
}

func (c *clientMessengerService) OnFailure(observer FailureObserver) {
	c.mu.Lock()
	c.observer = observer
	c.mu.Unlock()
}

func (c *clientMessengerService) PollInterval() time.Duration {
	return c.pollInterval
}

// Close stops polling for good. The lifetime context is cancelled before
// waiting for a running user switch, so a slow activation refresh is
// aborted instead of delaying shutdown.
func (c *clientMessengerService) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.cancel()

	c.transition.Lock()
	defer c.transition.Unlock()

	c.poller.Stop()
}

func (c *clientMessengerService) notify() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}

// fail logs err, reports it to the observer and returns the mapped error.
func (c *clientMessengerService) fail(op string, err error) error {
	mapped := mapAdapterError(err)

	c.logger.Warn().Err(err).Str("op", op).Msg("message store request failed")

	c.mu.Lock()
	observer := c.observer
	c.mu.Unlock()

	if observer != nil {
		observer(Failure{Op: op, Err: mapped})
	}

	return mapped
}
