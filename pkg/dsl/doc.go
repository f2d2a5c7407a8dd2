/*
Package dsl provides a Go DSL for programmatically constructing automata.

It lets automata be declared with a fluent builder instead of a text
description, which is handy for generated automata and unit tests. The result
goes through exactly the same validation as a parsed description.

Example usage:

	b := dsl.New("even")
	b.State("even").Accepting().On('a', "odd").On('b', "even")
	b.State("odd").On('a', "even").On('b', "odd")

	a, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

The alphabet is the set of symbols used by On, in order of first use, unless
it is declared with Alphabet.
*/
package dsl
