// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyRefresher считает вызовы RefreshMessages.
type spyRefresher struct {
	calls atomic.Int64
	err   error
}

func (s *spyRefresher) RefreshMessages(_ context.Context) error {
	s.calls.Add(1)
	return s.err
}

// ── NewInboxPoller ───────────────────────────────────────────────────────────

func TestNewInboxPoller_ReturnsInterface(t *testing.T) {
	spy := &spyRefresher{}
	poller := NewInboxPoller(spy, logger.Nop())
	require.NotNil(t, poller)

	// проверяем что возвращённый объект реализует InboxPoller
	var _ InboxPoller = poller
	assert.False(t, poller.Running())
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestInboxPoller_Start_RefreshesImmediately(t *testing.T) {
	spy := &spyRefresher{}
	poller := NewInboxPoller(spy, logger.Nop())

	poller.Start(context.Background(), 1, time.Hour)
	defer poller.Stop()

	// первый вызов делается до запуска тикера, ждать не нужно
	assert.Equal(t, int64(1), spy.calls.Load())
	assert.True(t, poller.Running())
}

func TestInboxPoller_Start_RefreshesOnTicks(t *testing.T) {
	spy := &spyRefresher{}
	poller := NewInboxPoller(spy, logger.Nop())

	// Интервал 10ms — за 55ms должно быть ~5 тиков плюс первый вызов
	poller.Start(context.Background(), 1, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	poller.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "RefreshMessages должен быть вызван несколько раз, вызвано: %d", got)
}

func TestInboxPoller_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyRefresher{}
	poller := NewInboxPoller(spy, logger.Nop())

	poller.Start(context.Background(), 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	poller.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := spy.calls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "после Stop новых вызовов быть не должно")
	assert.False(t, poller.Running())
}

func TestInboxPoller_Stop_BeforeStart_NoPanic(t *testing.T) {
	poller := NewInboxPoller(&spyRefresher{}, logger.Nop())

	// Stop без Start не должен паниковать
	assert.NotPanics(t, func() { poller.Stop() })
}

func TestInboxPoller_Stop_Twice_NoPanic(t *testing.T) {
	poller := NewInboxPoller(&spyRefresher{}, logger.Nop())

	poller.Start(context.Background(), 1, time.Hour)
	assert.NotPanics(t, func() {
		poller.Stop()
		poller.Stop()
	})
}

func TestInboxPoller_Start_RestartKeepsSingleTicker(t *testing.T) {
	spy := &spyRefresher{}
	poller := NewInboxPoller(spy, logger.Nop())

	// повторный Start останавливает предыдущий тикер
	poller.Start(context.Background(), 1, 10*time.Millisecond)
	poller.Start(context.Background(), 2, time.Hour)
	before := spy.calls.Load()
	time.Sleep(40 * time.Millisecond)
	after := spy.calls.Load()
	poller.Stop()

	assert.Equal(t, before, after, "старый тикер должен быть остановлен")
}

func TestInboxPoller_Start_ZeroInterval_UsesDefault(t *testing.T) {
	spy := &spyRefresher{}
	poller := NewInboxPoller(spy, logger.Nop())

	poller.Start(context.Background(), 1, 0)
	time.Sleep(20 * time.Millisecond)
	poller.Stop()

	// при интервале по умолчанию (5s) тиков за 20ms быть не может
	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestInboxPoller_ContextCancel_StopsGoroutine(t *testing.T) {
	spy := &spyRefresher{}
	poller := NewInboxPoller(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	poller.Start(ctx, 1, 10*time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
	calls := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, calls, spy.calls.Load(), "после отмены контекста вызовов быть не должно")
	poller.Stop()
}
