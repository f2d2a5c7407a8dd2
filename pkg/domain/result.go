package domain

// Result pairs an input string with its verdict.
type Result struct {
	Input   string  `json:"input"`
	Verdict Verdict `json:"verdict"`
}

// Run is a classification together with the path that produced it.
type Run struct {
	Verdict Verdict `json:"verdict"`
	// Path lists the visited state names, starting with the start state.
	// It is empty for InvalidSymbol.
	Path []string `json:"path,omitempty"`
	// Stuck is the input offset with no transition, -1 if the run never got stuck.
	Stuck int `json:"stuck"`
	// Offending is the input offset of the first character outside the alphabet, or -1.
	Offending int `json:"offending"`
}
