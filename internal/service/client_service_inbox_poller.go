package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-messenger/internal/logger"
)

const DefaultPollInterval = 5 * time.Second

type inboxPoller struct {
	refresher inboxRefresher
	logger    *logger.Logger

	// lifecycle serializes Start and Stop so at most one ticker is alive
	lifecycle sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewInboxPoller creates an inboxPoller that calls refresher.RefreshMessages
// on a ticker. The poller is idle until Start is called.
func NewInboxPoller(refresher inboxRefresher, logger *logger.Logger) InboxPoller {
	return &inboxPoller{refresher: refresher, logger: logger}
}

// Start implements InboxPoller. It stops any previously running job, performs
// one refresh, then launches a background goroutine that refreshes every
// interval. If interval is zero or negative it defaults to
// DefaultPollInterval. The goroutine exits when ctx is cancelled or Stop is
// called.
func (p *inboxPoller) Start(ctx context.Context, userID int64, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	p.stop()

	jobCtx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.cancel = cancel
	p.mu.Unlock()

	p.logger.Debug().Int64("user_id", userID).Dur("interval", interval).Msg("inbox polling started")

	_ = p.refresher.RefreshMessages(jobCtx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = p.refresher.RefreshMessages(jobCtx)
			}
		}
	}()
}

// Stop implements InboxPoller. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// poller is not running.
func (p *inboxPoller) Stop() {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	p.stop()
}

func (p *inboxPoller) stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		p.logger.Debug().Msg("inbox polling stopped")
	}
	p.wg.Wait()
}

func (p *inboxPoller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.cancel != nil
}
