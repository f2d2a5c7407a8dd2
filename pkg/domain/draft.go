package domain

type cell struct {
	state, symbol int
}

// Draft assembles an Automaton one declaration at a time.
// Every method validates its input against what has been declared so far and
// returns a *LoadError on the first violation; callers are expected to stop there.
type Draft struct {
	states      []State
	stateIndex  map[string]int
	symbols     []Symbol
	symbolIndex [256]int
	start       int
	hasStart    bool
	table       map[cell]int
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	d := &Draft{
		stateIndex: make(map[string]int),
		table:      make(map[cell]int),
	}
	for i := range d.symbolIndex {
		d.symbolIndex[i] = NoTransition
	}
	return d
}

// AddState declares a state. Names must be unique.
func (d *Draft) AddState(name string) error {
	if _, ok := d.stateIndex[name]; ok {
		return newLoadError(DuplicateState, name)
	}
	d.stateIndex[name] = len(d.states)
	d.states = append(d.states, State{Name: name})
	return nil
}

// SetStart selects the start state among the declared states.
func (d *Draft) SetStart(name string) error {
	idx, ok := d.stateIndex[name]
	if !ok {
		return newLoadError(UnknownStartState, name)
	}
	d.start = idx
	d.hasStart = true
	return nil
}

// AddSymbol declares the alphabet symbol denoted by token (see SymbolOf).
func (d *Draft) AddSymbol(token string) error {
	if token == "" {
		return ErrEmptySymbol
	}
	c := SymbolOf(token)
	if d.symbolIndex[c] != NoTransition {
		return newLoadError(DuplicateSymbol, c.String())
	}
	d.symbolIndex[c] = len(d.symbols)
	d.symbols = append(d.symbols, c)
	return nil
}

// MarkAccepting flags a declared state as accepting. A state can be marked once.
func (d *Draft) MarkAccepting(name string) error {
	idx, ok := d.stateIndex[name]
	if !ok {
		return newLoadError(UnknownFinishState, name)
	}
	if d.states[idx].Accepting {
		return newLoadError(DuplicateFinishState, name)
	}
	d.states[idx].Accepting = true
	return nil
}

// AddTransition records from --symbol--> to. All three must resolve against the
// declarations, and each (from, symbol) pair may be defined only once.
func (d *Draft) AddTransition(from, symbol, to string) error {
	fromIdx, fromOK := d.stateIndex[from]
	toIdx, toOK := d.stateIndex[to]
	symIdx := NoTransition
	if symbol != "" {
		symIdx = d.symbolIndex[SymbolOf(symbol)]
	}
	if !fromOK || !toOK || symIdx == NoTransition {
		return newLoadError(InvalidTransition, from, symbol, to)
	}

	key := cell{state: fromIdx, symbol: symIdx}
	if _, dup := d.table[key]; dup {
		return newLoadError(DuplicateTransition, from, symbol, to)
	}
	d.table[key] = toIdx
	return nil
}

// Freeze produces the immutable Automaton. The draft may keep being used
// afterwards without affecting the returned value.
func (d *Draft) Freeze() (*Automaton, error) {
	if !d.hasStart {
		return nil, newLoadError(MissingStartState)
	}

	a := &Automaton{
		states:      make([]State, len(d.states)),
		start:       d.start,
		symbols:     make([]Symbol, len(d.symbols)),
		table:       make([][]int, len(d.states)),
		stateIndex:  make(map[string]int, len(d.states)),
		symbolIndex: d.symbolIndex,
	}
	copy(a.states, d.states)
	copy(a.symbols, d.symbols)
	for name, idx := range d.stateIndex {
		a.stateIndex[name] = idx
	}
	for i := range a.table {
		row := make([]int, len(d.symbols))
		for j := range row {
			row[j] = NoTransition
		}
		a.table[i] = row
	}
	for k, to := range d.table {
		a.table[k.state][k.symbol] = to
	}
	return a, nil
}
