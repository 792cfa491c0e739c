/*
Package generator draws random strings from an alphabet by rejection sampling.

Every raw byte is masked to its low 7 bits, which maps the 256 byte values onto the 128 ascii values
exactly two to one, and the candidate is kept only if the alphabet selects it. Masking a power of two
range and discarding rejected candidates keeps every emitted character uniformly distributed over the
selectable characters, whatever their number.

	rules, _ := alphabet.Build([]string{"@isalnum"}, nil)
	g := generator.New(rules, generator.MaxRetries(1 << 20))
	v, err := g.Generate(ctx, 16, entropy.NewCryptoSource())

Generate fails fast: a source failure, an alphabet that selects nothing, an exhausted retry budget or a
cancelled context all return an error and no partial value.
*/
package generator
