/*
The errors package provides a custom error type and utilities used when building alphabets
from accept and exclude rules.

The RuleError type records which rule set and which token produced the error, and PrintError
logs every error nested inside a multierror so that all the bad rules are reported at once
instead of only the first one.

# Usage

	import errors2 "github.com/assetnote/pwdgen/pkg/errors"

	...

	rules, err := alphabet.Build(accept, exclude)
	if err != nil {
		errors2.PrintError(err, 0)
		return fmt.Errorf("invalid rules: %w", err)
	}
*/
package errors
