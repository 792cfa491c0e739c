/*
Package ascii provides the closed set of character classes that can be used to describe an alphabet.

Each Class behaves like the classic C locale ctype test of the same name over the 7 bit ascii domain.
The set is fixed at compile time, there is no way to register additional classes.

	c, err := ascii.Resolve("isdigit")
	if err != nil {
		// errors.Is(err, ascii.ErrUnknownPredicate)
	}
	c.Contains('7') // true
*/
package ascii
