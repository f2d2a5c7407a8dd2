package dfa

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/dfa/internal/logging"
	"github.com/aretw0/dfa/internal/runtime"
	"github.com/aretw0/dfa/pkg/adapters/file"
	"github.com/aretw0/dfa/pkg/adapters/memory"
	"github.com/aretw0/dfa/pkg/compiler"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/ports"
	"github.com/aretw0/dfa/pkg/schema"
)

// ErrEmptyName is returned when registering an automaton without a name.
var ErrEmptyName = errors.New("automaton name cannot be empty")

// Engine is the high-level entry point of the library.
// It wraps the builder and the simulator, and keeps a registry of named automata.
type Engine struct {
	store   ports.AutomatonStore
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	workers int

	mu    sync.RWMutex
	cache map[string]*domain.Automaton
	// gen counts registry mutations; Lookup only caches what it compiled
	// if no Register or Remove happened meanwhile.
	gen uint64
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore sets the registry backend (default: in-memory).
func WithStore(s ports.AutomatonStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithLifecycleHooks registers observability hooks.
// Hooks may be called from several goroutines at once.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithWorkers bounds batch classification parallelism (0: GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{
		cache: make(map[string]*domain.Automaton),
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.store == nil {
		eng.store = memory.NewStore()
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	return eng
}

// Store returns the registry backend.
func (e *Engine) Store() ports.AutomatonStore {
	return e.store
}

// Load builds an automaton from the lines of src.
func (e *Engine) Load(ctx context.Context, src ports.LineSource) (*domain.Automaton, error) {
	lines, err := src.Lines(ctx)
	if err != nil {
		return nil, err
	}
	a, err := compiler.Build(lines)
	return e.loaded(ctx, "", a, err)
}

// LoadFile builds an automaton from a description file. Files ending in
// .yaml, .yml or .json are read as structured documents (see package schema),
// anything else as the text description.
func (e *Engine) LoadFile(ctx context.Context, path string) (*domain.Automaton, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open %s: %w", path, err)
		}
		var a *domain.Automaton
		if strings.EqualFold(filepath.Ext(path), ".json") {
			a, err = schema.UnmarshalJSON(data)
		} else {
			a, err = schema.UnmarshalYAML(data)
		}
		return e.loaded(ctx, path, a, err)
	}

	lines, err := file.NewSource(path).Lines(ctx)
	if err != nil {
		return nil, err
	}
	a, err := compiler.Build(lines)
	return e.loaded(ctx, path, a, err)
}

// Compile builds an automaton from description text.
func (e *Engine) Compile(ctx context.Context, name, description string) (*domain.Automaton, error) {
	a, err := compiler.Parse(bytes.NewBufferString(description))
	return e.loaded(ctx, name, a, err)
}

func (e *Engine) loaded(ctx context.Context, name string, a *domain.Automaton, err error) (*domain.Automaton, error) {
	if err != nil {
		ev := &domain.LoadEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventLoadError},
			Name:      name,
			Err:       err,
		}
		if le, ok := domain.AsLoadError(err); ok {
			ev.ErrorKind = string(le.Kind)
		}
		e.logger.Debug("automaton rejected", "name", name, "error", err)
		if e.hooks.OnLoadError != nil {
			e.hooks.OnLoadError(ctx, ev)
		}
		return nil, err
	}

	e.logger.Debug("automaton loaded", "name", name, "states", a.NumStates(), "symbols", a.NumSymbols())
	if e.hooks.OnLoad != nil {
		e.hooks.OnLoad(ctx, &domain.LoadEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventLoad},
			Name:      name,
			States:    a.NumStates(),
			Symbols:   a.NumSymbols(),
		})
	}
	return a, nil
}

// Classify returns the verdict of a for input.
func (e *Engine) Classify(ctx context.Context, a *domain.Automaton, input string) domain.Verdict {
	began := time.Now()
	v := runtime.Classify(a, input)
	e.observe(ctx, "", domain.Result{Input: input, Verdict: v}, time.Since(began))
	return v
}

// Trace classifies input and returns the visited path as well.
func (e *Engine) Trace(ctx context.Context, a *domain.Automaton, input string) domain.Run {
	began := time.Now()
	run := runtime.Trace(a, input)
	e.observe(ctx, "", domain.Result{Input: input, Verdict: run.Verdict}, time.Since(began))
	return run
}

// ClassifyAll classifies inputs in parallel and returns results in input order.
func (e *Engine) ClassifyAll(ctx context.Context, a *domain.Automaton, inputs []string) ([]domain.Result, error) {
	return runtime.ClassifyBatch(ctx, a, inputs, e.workers, func(r domain.Result, elapsed time.Duration) {
		e.observe(ctx, "", r, elapsed)
	})
}

func (e *Engine) observe(ctx context.Context, name string, r domain.Result, elapsed time.Duration) {
	if e.hooks.OnClassify == nil {
		return
	}
	e.hooks.OnClassify(ctx, &domain.ClassifyEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventClassify},
		Name:      name,
		Input:     r.Input,
		Verdict:   r.Verdict,
		Elapsed:   elapsed,
	})
}

// Register compiles description and, if valid, stores it under name.
// Invalid descriptions are never stored.
func (e *Engine) Register(ctx context.Context, name, description string) (*domain.Automaton, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	a, err := e.Compile(ctx, name, description)
	if err != nil {
		return nil, err
	}
	if err := e.store.Save(ctx, name, description); err != nil {
		return nil, fmt.Errorf("failed to store automaton %s: %w", name, err)
	}

	e.mu.Lock()
	e.cache[name] = a
	e.gen++
	e.mu.Unlock()

	e.logger.Info("automaton registered", "name", name)
	return a, nil
}

// Lookup returns the named automaton, compiling it from the store on first use.
func (e *Engine) Lookup(ctx context.Context, name string) (*domain.Automaton, error) {
	e.mu.RLock()
	a, ok := e.cache[name]
	gen := e.gen
	e.mu.RUnlock()
	if ok {
		return a, nil
	}

	desc, err := e.store.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	a, err = e.Compile(ctx, name, desc)
	if err != nil {
		return nil, fmt.Errorf("stored automaton %s: %w", name, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if cached, ok := e.cache[name]; ok {
		return cached, nil
	}
	if e.gen == gen {
		e.cache[name] = a
	}
	return a, nil
}

// Remove deletes the named automaton from the registry.
func (e *Engine) Remove(ctx context.Context, name string) error {
	err := e.store.Delete(ctx, name)

	e.mu.Lock()
	delete(e.cache, name)
	e.gen++
	e.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to delete automaton %s: %w", name, err)
	}
	return nil
}

// Names lists the registered automata.
func (e *Engine) Names(ctx context.Context) ([]string, error) {
	return e.store.List(ctx)
}
