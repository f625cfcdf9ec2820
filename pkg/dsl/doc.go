/*
Package dsl provides a Go DSL for programmatically constructing dialogue scripts.

It allows developers to define branching dialogue using a fluent builder
instead of writing YAML by hand. This is useful for generated dialogue, unit
tests, and IDE autocompletion.

Example usage:

	b := dsl.New("The Gate")

	b.Add("gate").
		Say("Guard", "Halt! Who goes there?", dsl.Bold(0, 5)).
		Option("A friend", "friend").
		Option("Nobody", "")

	b.Add("friend").
		Say("Guard", "Then pass, friend.")

	eng, err := b.Build()
	// ... play eng with a termdialog.Runner
*/
package dsl
