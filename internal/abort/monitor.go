// Package abort watches for an operator's request to stop a focus sweep: a "q" line typed
// on the console or an interrupt signal.
package abort

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/rs/zerolog"
)

// Monitor satisfies goAzcamVatt.AbortMonitor
type Monitor struct {
	requested atomic.Bool
	onAbort   func()
	logger    zerolog.Logger
}

// NewMonitor creates a monitor. onAbort, if not nil, runs once on the first request,
// typically to abort the exposure on the server.
func NewMonitor(logger zerolog.Logger, onAbort func()) *Monitor {
	return &Monitor{onAbort: onAbort, logger: logger}
}

func (monitor *Monitor) AbortRequested() bool {
	return monitor.requested.Load()
}

// Trigger records an abort request
func (monitor *Monitor) Trigger(reason string) {
	if !monitor.requested.CompareAndSwap(false, true) {
		return
	}
	monitor.logger.Warn().Str("reason", reason).Msg("Abort requested")
	if monitor.onAbort != nil {
		monitor.onAbort()
	}
}

func (monitor *Monitor) Reset() {
	monitor.requested.Store(false)
}

// Watch reads lines from reader until it ends or ctx is done, triggering on "q" or "quit".
func (monitor *Monitor) Watch(ctx context.Context, reader io.Reader) {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "q", "quit":
			monitor.Trigger("keyboard")
			return
		}
	}
}

// WatchSignals triggers on SIGINT or SIGTERM until the returned stop function is called.
func (monitor *Monitor) WatchSignals() (stop func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-signals:
			monitor.Trigger(sig.String())
		case <-done:
		}
	}()
	return func() {
		signal.Stop(signals)
		close(done)
	}
}
