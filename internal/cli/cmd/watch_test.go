package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/bnema/dusk/internal/domain/entity"
	"github.com/bnema/dusk/internal/ui/mainloop"
)

// recordingTarget reports each controller call on a channel.
type recordingTarget struct {
	calls chan string
}

func newRecordingTarget() *recordingTarget {
	return &recordingTarget{calls: make(chan string, 4)}
}

func (r *recordingTarget) Toggle(context.Context) entity.ColorScheme {
	r.calls <- "toggle"
	return entity.ColorSchemeDark
}

func (r *recordingTarget) Reload(context.Context) entity.PreferenceState {
	r.calls <- "reload"
	return entity.PreferenceState{Scheme: entity.ColorSchemeLight}
}

// failingMonitor returns err as soon as it is started.
type failingMonitor struct {
	err     error
	started chan struct{}
}

func (m *failingMonitor) Name() string { return "failing" }

func (m *failingMonitor) Run(context.Context, func()) error {
	close(m.started)
	return m.err
}

func startLoop(t *testing.T) *mainloop.Loop {
	t.Helper()
	loop := mainloop.New()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = loop.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return loop
}

func TestHandleSignal(t *testing.T) {
	tests := []struct {
		name     string
		sig      unix.Signal
		wantCall string
	}{
		{name: "SIGUSR1 toggles", sig: unix.SIGUSR1, wantCall: "toggle"},
		{name: "SIGHUP reloads", sig: unix.SIGHUP, wantCall: "reload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loop := startLoop(t)
			target := newRecordingTarget()

			require.True(t, handleSignal(context.Background(), loop, target, tt.sig))

			select {
			case call := <-target.calls:
				assert.Equal(t, tt.wantCall, call)
			case <-time.After(2 * time.Second):
				t.Fatalf("%s was not dispatched", tt.wantCall)
			}
		})
	}
}

func TestHandleSignal_StopSignals(t *testing.T) {
	for _, sig := range []unix.Signal{unix.SIGINT, unix.SIGTERM} {
		loop := startLoop(t)
		target := newRecordingTarget()

		assert.False(t, handleSignal(context.Background(), loop, target, sig), sig.String())

		// A marker posted after the signal runs only once anything before it ran.
		marker := make(chan struct{})
		loop.Post(func() { close(marker) })
		<-marker
		assert.Empty(t, target.calls, sig.String())
	}
}

func TestRunMonitor_FailureKeepsDaemonRunning(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	monitor := &failingMonitor{err: errors.New("gsettings: not found"), started: make(chan struct{})}
	monitorDone := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(monitorDone)
		return runMonitor(gctx, monitor, func() {})
	})
	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	<-monitor.started
	select {
	case <-monitorDone:
	case <-time.After(2 * time.Second):
		t.Fatal("failing monitor did not return")
	}
	assert.NoError(t, gctx.Err(), "a failing monitor must not cancel the group")

	cancel()
	assert.NoError(t, g.Wait())
}
