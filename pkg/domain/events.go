package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventLoad      EventType = "load"
	EventLoadError EventType = "load_error"
	EventClassify  EventType = "classify"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// LoadEvent describes the outcome of building an automaton.
type LoadEvent struct {
	EventBase
	Name      string `json:"name,omitempty"`
	States    int    `json:"states,omitempty"`
	Symbols   int    `json:"symbols,omitempty"`
	Err       error  `json:"-"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// ClassifyEvent describes a single classification.
type ClassifyEvent struct {
	EventBase
	Name    string        `json:"name,omitempty"`
	Input   string        `json:"input"`
	Verdict Verdict       `json:"verdict"`
	Elapsed time.Duration `json:"elapsed"`
}

// LifecycleHooks defines callbacks for engine observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnLoad      func(context.Context, *LoadEvent)
	OnLoadError func(context.Context, *LoadEvent)
	OnClassify  func(context.Context, *ClassifyEvent)
}
