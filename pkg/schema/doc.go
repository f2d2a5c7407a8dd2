// Package schema is the structured (YAML/JSON) form of an automaton.
//
// A Document mirrors the four header sections and the transition records of
// the text description:
//
//	start: q0
//	states: [q0, q1]
//	symbols: [a, b]
//	accepting: [q1]
//	transitions:
//	  - {from: q0, symbol: a, to: q1}
//	  - {from: q1, symbol: b, to: q1}
//
// Building a Document goes through domain.Draft in the same order as the text
// builder, so both formats report the same first error for the same content.
package schema
