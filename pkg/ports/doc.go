/*
Package ports defines the driven ports (interfaces) around the automaton core.

The core never performs I/O itself: descriptions and candidate strings arrive
through a LineSource, verdicts leave through a Reporter, and named automaton
descriptions are kept in an AutomatonStore.

# Key Interfaces

  - LineSource: supplies significant lines (no comments, no empty lines).
  - Reporter: receives each candidate string together with its verdict.
  - AutomatonStore: persists raw descriptions by name (memory, file, Redis).
*/
package ports
