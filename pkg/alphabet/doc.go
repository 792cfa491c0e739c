/*
Package alphabet composes accept and exclude rules into a single membership test over
the ascii domain.

A RuleSet is the union of character classes and literal characters: a value matches when it
belongs to any class or equals any literal. Rules pairs an accept set with an exclude set and a
value is selectable when the accept set matches it and the exclude set does not, so exclusion
always wins.

Rules are usually built from user supplied tokens, where a leading @ names a class and anything
else is a string of literal characters

	rules, err := alphabet.Build([]string{"@isalnum", "_-"}, []string{"0O1lI"})
	if err != nil {
		// every bad token is reported in a multierror of *errors.RuleError
	}
	table := rules.Table()
	table.Size() // 59

Once built, a Rules value is never mutated by the generation code and a Table is a frozen
lookup of the result.
*/
package alphabet
