package domain

// Symbol is a single character of an automaton's alphabet.
type Symbol byte

func (s Symbol) String() string {
	return string([]byte{byte(s)})
}

// MarshalText encodes the symbol as its single character.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte{byte(s)}, nil
}

// UnmarshalText decodes a symbol token. Like SymbolOf, only the first
// character is significant.
func (s *Symbol) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return ErrEmptySymbol
	}
	*s = Symbol(text[0])
	return nil
}

// SymbolOf returns the symbol a token denotes: its first character.
// Any remaining characters are ignored.
func SymbolOf(token string) Symbol {
	return Symbol(token[0])
}

// State is a named automaton state.
type State struct {
	Name      string `json:"name" yaml:"name"`
	Accepting bool   `json:"accepting,omitempty" yaml:"accepting,omitempty"`
}

// Transition is a single entry of the transition table.
type Transition struct {
	From   string `json:"from" yaml:"from"`
	Symbol Symbol `json:"symbol" yaml:"symbol"`
	To     string `json:"to" yaml:"to"`
}

// NoTransition marks an undefined (state, symbol) pair.
const NoTransition = -1

// Automaton is a validated deterministic finite automaton.
// It is never mutated after Freeze, so it may be shared freely.
type Automaton struct {
	states  []State
	start   int
	symbols []Symbol
	// table[state][symbol] is the destination state index or NoTransition.
	table [][]int

	stateIndex  map[string]int
	symbolIndex [256]int
}

// Start returns the index of the start state.
func (a *Automaton) Start() int {
	return a.start
}

// StartState returns the start state.
func (a *Automaton) StartState() State {
	return a.states[a.start]
}

// States returns a copy of the states in declaration order.
func (a *Automaton) States() []State {
	out := make([]State, len(a.states))
	copy(out, a.states)
	return out
}

// State returns the state at idx.
func (a *Automaton) State(idx int) State {
	return a.states[idx]
}

// NumStates returns the number of declared states.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// Symbols returns a copy of the alphabet in declaration order.
func (a *Automaton) Symbols() []Symbol {
	out := make([]Symbol, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// NumSymbols returns the size of the alphabet.
func (a *Automaton) NumSymbols() int {
	return len(a.symbols)
}

// StateIndex resolves a state name. ok is false for undeclared names.
func (a *Automaton) StateIndex(name string) (idx int, ok bool) {
	idx, ok = a.stateIndex[name]
	return idx, ok
}

// SymbolIndex resolves an alphabet symbol. ok is false outside the alphabet.
func (a *Automaton) SymbolIndex(c byte) (idx int, ok bool) {
	idx = a.symbolIndex[c]
	return idx, idx != NoTransition
}

// InAlphabet reports whether c belongs to the alphabet.
func (a *Automaton) InAlphabet(c byte) bool {
	return a.symbolIndex[c] != NoTransition
}

// Next returns the destination of (state, symbol), or NoTransition.
func (a *Automaton) Next(state, symbol int) int {
	return a.table[state][symbol]
}

// IsAccepting reports whether the state at idx is accepting.
func (a *Automaton) IsAccepting(idx int) bool {
	return a.states[idx].Accepting
}

// Accepting returns the names of the accepting states in declaration order.
func (a *Automaton) Accepting() []string {
	var names []string
	for _, s := range a.states {
		if s.Accepting {
			names = append(names, s.Name)
		}
	}
	return names
}

// Transitions lists the defined transitions ordered by state, then symbol.
func (a *Automaton) Transitions() []Transition {
	var out []Transition
	for i, row := range a.table {
		for j, to := range row {
			if to == NoTransition {
				continue
			}
			out = append(out, Transition{
				From:   a.states[i].Name,
				Symbol: a.symbols[j],
				To:     a.states[to].Name,
			})
		}
	}
	return out
}

// IsComplete reports whether every (state, symbol) pair has a transition.
func (a *Automaton) IsComplete() bool {
	for _, row := range a.table {
		for _, to := range row {
			if to == NoTransition {
				return false
			}
		}
	}
	return true
}
