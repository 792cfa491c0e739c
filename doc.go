/*
Package pwdgen provides the building blocks to generate random strings from a constrained
ascii alphabet, where the alphabet is described by accept and exclude rules made of
named character classes and literal characters.

There are no exports in the root package.

The CLI tool in `cmd/pwdgen` generates values, inspects the character classes and alphabets,
and serves generation over http.
*/
package pwdgen
