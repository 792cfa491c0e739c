package context

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/assetnote/pwdgen/pkg/log"
)

var (
	ctx            context.Context
	cancel         context.CancelFunc
	ctxInitialized sync.Once
)

// AddInterruptCancellation will catch the first interrupt and cancel the context.
// Upon a second interrupt the program exits immediately
func AddInterruptCancellation(ctx context.Context, cancel context.CancelFunc) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		interrupts := 0
		for {
			select {
			case <-c:
				interrupts++
				if interrupts > 1 {
					log.Info().Msg("Received multiple interrupt signals. Exiting")
					os.Exit(1)
				}
				log.Info().Msg("Received interrupt signal. Stopping generation")
				cancel()
			case <-ctx.Done():
				signal.Stop(c)
				return
			}
		}
	}()
}

// InitContext will initialize the global context used to catch interrupts. This is automatically called
// by Context and Cancel
func InitContext() {
	ctxInitialized.Do(func() {
		ctx, cancel = context.WithCancel(context.Background())
		AddInterruptCancellation(ctx, cancel)
	})
}

// Context will return the global interruptible context. This is safe to call from multiple goroutines
// and will always return the same context
func Context() context.Context {
	InitContext()
	return ctx
}

// Cancel will cancel the global context
func Cancel() {
	InitContext()
	cancel()
}

// WithTimeout derives a context from parent that is cancelled after d.
// A zero or negative d returns a plain cancellable context
func WithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, d)
}
