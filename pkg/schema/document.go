package schema

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/dfa/pkg/domain"
)

// Transition is a single transition record.
type Transition struct {
	From   string `json:"from" yaml:"from"`
	Symbol string `json:"symbol" yaml:"symbol"`
	To     string `json:"to" yaml:"to"`
}

// Document is the serializable form of an automaton.
type Document struct {
	Start       string       `json:"start" yaml:"start"`
	States      []string     `json:"states" yaml:"states"`
	Symbols     []string     `json:"symbols" yaml:"symbols"`
	Accepting   []string     `json:"accepting" yaml:"accepting"`
	Transitions []Transition `json:"transitions" yaml:"transitions"`
}

// FromAutomaton captures a into a Document.
func FromAutomaton(a *domain.Automaton) Document {
	doc := Document{
		Start:     a.StartState().Name,
		Accepting: a.Accepting(),
	}
	for _, s := range a.States() {
		doc.States = append(doc.States, s.Name)
	}
	for _, s := range a.Symbols() {
		doc.Symbols = append(doc.Symbols, s.String())
	}
	for _, t := range a.Transitions() {
		doc.Transitions = append(doc.Transitions, Transition{From: t.From, Symbol: t.Symbol.String(), To: t.To})
	}
	if doc.Accepting == nil {
		doc.Accepting = []string{}
	}
	if doc.Transitions == nil {
		doc.Transitions = []Transition{}
	}
	return doc
}

// Build validates the document and produces the automaton.
func (d Document) Build() (*domain.Automaton, error) {
	if d.Start == "" {
		return nil, &domain.LoadError{Kind: domain.MissingStartState}
	}
	if d.States == nil {
		return nil, &domain.LoadError{Kind: domain.MissingStateList}
	}

	draft := domain.NewDraft()
	for _, name := range d.States {
		if name == "" || strings.ContainsFunc(name, unicode.IsSpace) {
			return nil, &domain.LoadError{Kind: domain.InvalidToken, Tokens: []string{name}}
		}
		if err := draft.AddState(name); err != nil {
			return nil, err
		}
	}
	if err := draft.SetStart(d.Start); err != nil {
		return nil, err
	}

	if d.Symbols == nil {
		return nil, &domain.LoadError{Kind: domain.MissingSymbolList}
	}
	for _, tok := range d.Symbols {
		if tok != "" && isSpace(domain.SymbolOf(tok)) {
			return nil, &domain.LoadError{Kind: domain.InvalidToken, Tokens: []string{tok}}
		}
		if err := draft.AddSymbol(tok); err != nil {
			return nil, fmt.Errorf("symbol %q: %w", tok, err)
		}
	}

	for _, name := range d.Accepting {
		if err := draft.MarkAccepting(name); err != nil {
			return nil, err
		}
	}

	for _, t := range d.Transitions {
		if err := draft.AddTransition(t.From, t.Symbol, t.To); err != nil {
			return nil, err
		}
	}
	return draft.Freeze()
}

// isSpace reports whether c separates tokens in the text format.
func isSpace(c domain.Symbol) bool {
	return c < 0x80 && unicode.IsSpace(rune(c))
}

// MarshalYAML encodes a as a YAML document.
func MarshalYAML(a *domain.Automaton) ([]byte, error) {
	return yaml.Marshal(FromAutomaton(a))
}

// UnmarshalYAML decodes and builds an automaton from YAML.
func UnmarshalYAML(data []byte) (*domain.Automaton, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode yaml: %w", err)
	}
	return doc.Build()
}

// MarshalJSON encodes a as an indented JSON document.
func MarshalJSON(a *domain.Automaton) ([]byte, error) {
	return json.MarshalIndent(FromAutomaton(a), "", "  ")
}

// UnmarshalJSON decodes and builds an automaton from JSON.
func UnmarshalJSON(data []byte) (*domain.Automaton, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}
	return doc.Build()
}
