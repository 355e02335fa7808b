package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Signals are the signals that cancel the context returned by WithSignals.
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// WithSignals returns a copy of parent that is cancelled on the first
// SIGINT or SIGTERM. After stop is called, or after the first signal,
// the default signal behavior is restored, so a second Ctrl-C kills the
// process.
func WithSignals(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(parent, Signals...)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx, cancel
}
