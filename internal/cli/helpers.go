package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/dfa/internal/logging"
	"github.com/aretw0/dfa/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
	once   sync.Once
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Context.Done():
			// Context cancelled elsewhere
		}
		sc.Stop()
	}()

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// Stop releases the signal subscription and cancels the context.
func (sc *SignalContext) Stop() {
	sc.once.Do(func() {
		signal.Stop(sc.sigCh)
		sc.Cancel()
	})
}

// NewLogger configures the application logger from a level name.
// Logs go to Stderr so Stdout stays clean for verdicts.
func NewLogger(level string) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return domain.LifecycleHooks{}
	}
	return domain.LifecycleHooks{
		OnLoad: func(ctx context.Context, e *domain.LoadEvent) {
			logger.Debug("Automaton Loaded", "name", e.Name, "states", e.States, "symbols", e.Symbols)
		},
		OnLoadError: func(ctx context.Context, e *domain.LoadEvent) {
			logger.Debug("Automaton Rejected", "name", e.Name, "kind", e.ErrorKind, "err", e.Err)
		},
		OnClassify: func(ctx context.Context, e *domain.ClassifyEvent) {
			logger.Debug("Classified", "input", e.Input, "verdict", e.Verdict, "elapsed", e.Elapsed)
		},
	}
}
