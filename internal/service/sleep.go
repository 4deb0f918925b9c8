// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/wneessen/smart-dashboard/internal/logger"
)

const (
	login1Interface = "org.freedesktop.login1.Manager"
	login1Member    = "PrepareForSleep"

	resumeDebounce = 2 // seconds
	sleepQueueSize = 8

	busRetryDelay      = 5 * time.Second
	networkWakeupDelay = 10 * time.Second
)

// monitorSleepResume watches logind for resume events and refreshes the weather once the
// machine is back. Lost bus connections are re-established until ctx is done.
func (s *Service) monitorSleepResume(ctx context.Context) {
	var lastResume int64
	for {
		conn, signals, ok := s.subscribeSleep(ctx)
		if !ok {
			return
		}
		s.handleSleepSignals(ctx, signals, &lastResume)

		conn.RemoveSignal(signals)
		if err := conn.Close(); err != nil {
			s.logger.Debug("failed to close system bus connection", logger.Err(err))
		}
		if !sleepCtx(ctx, busRetryDelay) {
			return
		}
	}
}

// subscribeSleep connects to the system bus and subscribes to PrepareForSleep. It retries
// until it succeeds and only returns false once ctx is done.
func (s *Service) subscribeSleep(ctx context.Context) (*dbus.Conn, chan *dbus.Signal, bool) {
	for {
		conn, err := dbus.ConnectSystemBus(dbus.WithContext(ctx))
		if err != nil {
			s.logger.Debug("system bus not available", logger.Err(err))
			if !sleepCtx(ctx, busRetryDelay) {
				return nil, nil, false
			}
			continue
		}

		err = conn.AddMatchSignal(dbus.WithMatchInterface(login1Interface), dbus.WithMatchMember(login1Member))
		if err != nil {
			s.logger.Error("failed to subscribe to sleep signal", slog.String("interface", login1Interface),
				logger.Err(err))
			_ = conn.Close()
			if !sleepCtx(ctx, busRetryDelay) {
				return nil, nil, false
			}
			continue
		}

		signals := make(chan *dbus.Signal, sleepQueueSize)
		conn.Signal(signals)
		s.logger.Debug("watching for system resume", slog.String("member", login1Member))
		return conn, signals, true
	}
}

// handleSleepSignals returns when ctx is done or the bus closes the signal channel.
func (s *Service) handleSleepSignals(ctx context.Context, signals chan *dbus.Signal, lastResume *int64) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-signals:
			if !ok {
				return
			}
			s.processSleepSignal(ctx, sig, lastResume)
		}
	}
}

// processSleepSignal reports whether sig was a resume event that led to a refresh.
// PrepareForSleep carries a single bool, false on resume.
func (s *Service) processSleepSignal(ctx context.Context, sig *dbus.Signal, lastResume *int64) bool {
	if sig == nil || len(sig.Body) != 1 {
		return false
	}
	if sleeping, ok := sig.Body[0].(bool); !ok || sleeping {
		return false
	}
	return s.handleResumeEvent(ctx, lastResume)
}

// handleResumeEvent refreshes the weather once the network had time to come up. Repeated
// resume events within the debounce window are ignored.
func (s *Service) handleResumeEvent(ctx context.Context, lastResume *int64) bool {
	now := time.Now().Unix()
	if now-atomic.LoadInt64(lastResume) < resumeDebounce {
		return false
	}
	atomic.StoreInt64(lastResume, now)

	if !sleepCtx(ctx, networkWakeupDelay) {
		return false
	}
	s.logger.Debug("system resumed, refreshing weather")
	s.refreshNow()
	return true
}

// sleepCtx waits for d and reports false if ctx ended first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
