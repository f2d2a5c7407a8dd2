package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAutomatonNotFound is returned when a named automaton is not in a store.
var ErrAutomatonNotFound = errors.New("automaton not found")

// ErrEmptySymbol is returned when decoding an empty symbol token.
var ErrEmptySymbol = errors.New("empty symbol")

// ErrorKind identifies which construction invariant was violated.
// Kinds are comparable errors, so errors.Is(err, domain.DuplicateTransition) works
// on any error wrapping a *LoadError.
type ErrorKind string

const (
	MissingStartState    ErrorKind = "MissingStartState"
	MissingStateList     ErrorKind = "MissingStateList"
	MissingSymbolList    ErrorKind = "MissingSymbolList"
	MissingFinishList    ErrorKind = "MissingFinishList"
	UnknownStartState    ErrorKind = "UnknownStartState"
	DuplicateState       ErrorKind = "DuplicateState"
	DuplicateSymbol      ErrorKind = "DuplicateSymbol"
	UnknownFinishState   ErrorKind = "UnknownFinishState"
	DuplicateFinishState ErrorKind = "DuplicateFinishState"
	MalformedTransition  ErrorKind = "MalformedTransition"
	InvalidTransition    ErrorKind = "InvalidTransition"
	DuplicateTransition  ErrorKind = "DuplicateTransition"
	InvalidToken         ErrorKind = "InvalidToken"
)

var kindMessages = map[ErrorKind]string{
	MissingStartState:    "cannot read start state",
	MissingStateList:     "cannot read set of states",
	MissingSymbolList:    "cannot read transition symbols",
	MissingFinishList:    "cannot read set of finish states",
	UnknownStartState:    "start state is not listed in states list",
	DuplicateState:       "state occurs in states list twice",
	DuplicateSymbol:      "symbol occurs in symbol list twice",
	UnknownFinishState:   "finishing state is not listed in states list",
	DuplicateFinishState: "duplicated finishing state",
	MalformedTransition:  "transition needs <from> <symbol> <to>",
	InvalidTransition:    "invalid transition",
	DuplicateTransition:  "duplicate transition",
	InvalidToken:         "token cannot appear in a text description",
}

func (k ErrorKind) Error() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return string(k)
}

// LoadError reports the first invariant violated while building an automaton.
type LoadError struct {
	Kind ErrorKind
	// Tokens are the offending tokens, e.g. the (from, symbol, to) of a transition.
	Tokens []string
	// Line is the 1-based position among the significant description lines, 0 if unknown.
	Line int
}

func newLoadError(kind ErrorKind, tokens ...string) *LoadError {
	return &LoadError{Kind: kind, Tokens: tokens}
}

func (e *LoadError) Error() string {
	var sb strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&sb, "line %d: ", e.Line)
	}
	sb.WriteString(e.Kind.Error())
	if len(e.Tokens) > 0 {
		sb.WriteString(": ")
		sb.WriteString(strings.Join(e.Tokens, " "))
	}
	return sb.String()
}

func (e *LoadError) Unwrap() error {
	return e.Kind
}

// AsLoadError extracts a *LoadError from err's chain.
func AsLoadError(err error) (*LoadError, bool) {
	var le *LoadError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}
