package abort

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestWatchKeyboard(t *testing.T) {
	var aborts atomic.Int32
	monitor := NewMonitor(zerolog.Nop(), func() { aborts.Add(1) })

	monitor.Watch(context.Background(), strings.NewReader("\nx\nfocus\n"))
	require.False(t, monitor.AbortRequested())

	monitor.Watch(context.Background(), strings.NewReader("  Q \nq\n"))
	require.True(t, monitor.AbortRequested())
	require.Equal(t, int32(1), aborts.Load())
}

func TestTriggerRunsCallbackOnce(t *testing.T) {
	var aborts atomic.Int32
	monitor := NewMonitor(zerolog.Nop(), func() { aborts.Add(1) })
	monitor.Trigger("test")
	monitor.Trigger("test")
	require.True(t, monitor.AbortRequested())
	require.Equal(t, int32(1), aborts.Load())

	monitor.Reset()
	require.False(t, monitor.AbortRequested())
	monitor.Trigger("test")
	require.Equal(t, int32(2), aborts.Load())
}

func TestWatchStopsWhenCancelled(t *testing.T) {
	monitor := NewMonitor(zerolog.Nop(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	monitor.Watch(ctx, strings.NewReader("first\nq\n"))
	require.False(t, monitor.AbortRequested())
}

func TestWatchSignalsStop(t *testing.T) {
	monitor := NewMonitor(zerolog.Nop(), nil)
	stop := monitor.WatchSignals()
	stop()
	require.False(t, monitor.AbortRequested())
}
