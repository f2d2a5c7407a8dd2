/*
Package domain contains the core model of a deterministic finite automaton.

It defines the immutable Automaton value, the Draft used to assemble one, the
classification Verdict and the typed load errors. The package is pure: no I/O,
no persistence, no global state.

# Key Entities

  - State: a named state, optionally accepting.
  - Symbol: a single byte of the automaton's alphabet.
  - Automaton: states, alphabet, start state and a partial transition table.
    Read-only once frozen, safe to share between goroutines.
  - Draft: incremental, validating construction of an Automaton.
  - Verdict: Accepted, Rejected or InvalidSymbol.
  - LoadError: the first invariant violated while building, with the offending tokens.
*/
package domain
