package domain

import "fmt"

// Verdict is the classification of an input string.
type Verdict int

const (
	// Accepted: every character consumed, final state accepting.
	Accepted Verdict = iota
	// Rejected: a transition was undefined, or the final state is not accepting.
	Rejected
	// InvalidSymbol: the input contains a character outside the alphabet.
	InvalidSymbol
)

var verdictNames = [...]string{
	Accepted:      "accepted",
	Rejected:      "rejected",
	InvalidSymbol: "invalid_symbol",
}

func (v Verdict) String() string {
	if v < 0 || int(v) >= len(verdictNames) {
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
	return verdictNames[v]
}

// MarshalText implements encoding.TextMarshaler.
func (v Verdict) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(verdictNames) {
		return nil, fmt.Errorf("unknown verdict %d", int(v))
	}
	return []byte(verdictNames[v]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Verdict) UnmarshalText(text []byte) error {
	for i, name := range verdictNames {
		if name == string(text) {
			*v = Verdict(i)
			return nil
		}
	}
	return fmt.Errorf("unknown verdict %q", text)
}
