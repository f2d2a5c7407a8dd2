package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/dfa"
	"github.com/aretw0/dfa/internal/config"
	"github.com/aretw0/dfa/pkg/adapters/file"
	"github.com/aretw0/dfa/pkg/adapters/memory"
	"github.com/aretw0/dfa/pkg/adapters/redis"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/observability"
	"github.com/aretw0/dfa/pkg/ports"
)

// NewStore opens the automaton registry selected by cfg.
// The returned close function releases backend connections.
func NewStore(cfg config.StoreConfig) (ports.AutomatonStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case "", "memory":
		return memory.NewStore(), noop, nil
	case "file":
		return file.NewStore(cfg.Dir), noop, nil
	case "redis":
		var opts []redis.Option
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		if cfg.Redis.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.Redis.TTL))
		}
		s := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		return s, s.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

// NewEngine initializes an engine with standard CLI conventions: the configured
// store and worker count, debug hooks when the logger is at debug level, and
// metrics hooks when m is not nil.
func NewEngine(cfg config.Config, logger *slog.Logger, m *observability.Metrics) (*dfa.Engine, func() error, error) {
	store, closeStore, err := NewStore(cfg.Store)
	if err != nil {
		return nil, nil, err
	}

	hooks := []domain.LifecycleHooks{createDebugHooks(logger)}
	if m != nil {
		hooks = append(hooks, m.Hooks())
	}

	eng := dfa.New(
		dfa.WithStore(store),
		dfa.WithLogger(logger),
		dfa.WithWorkers(cfg.Workers),
		dfa.WithLifecycleHooks(observability.Chain(hooks...)),
	)
	return eng, closeStore, nil
}
