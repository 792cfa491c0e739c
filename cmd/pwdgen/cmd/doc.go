/*
Package cmd provides all the commands for the pwdgen binary.

The commands are separated by file, one per command. The root command generates values directly,
the subcommands inspect the predicate registry and alphabets or serve values over http.

there are a few global CLI flags that can be used to configure how pwdgen will operate. These are defined
by the globally exposed variables

# Usage

	pwdgen -l 16 -a @isalnum -a '_-' -e 0OIl1
	pwdgen alphabet -e @ispunct
	pwdgen serve --listen 127.0.0.1:8080
*/
package cmd
