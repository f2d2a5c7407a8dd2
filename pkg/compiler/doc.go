/*
Package compiler turns the textual automaton description into a domain.Automaton.

The description is a sequence of significant lines (comments and empty lines
already removed by the reader) in fixed order:

	<start-state>
	<state> <state> ...
	<symbol> <symbol> ...
	<accepting-state> ...        (a whitespace-only line means none)
	<from> <symbol> <to>         (zero or more)

Build stops at the first violated invariant and returns a *domain.LoadError;
no automaton is produced in that case. Format writes the canonical description
of an automaton so that Parse(Format(a)) classifies exactly like a.
*/
package compiler
