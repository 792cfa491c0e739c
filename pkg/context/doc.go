/*
Package context provides utilities wrapping the native go/context package
for catching and handling multiple interrupts.

Generation loops retry until they have drawn enough acceptable characters, and a narrow alphabet
can keep them spinning for a while. The CLI hands the context from this package to every
generation so the first SIGINT or SIGTERM stops the loop cleanly and the second one exits.

	import "github.com/assetnote/pwdgen/pkg/context"

	...

	if err := pwdgen.Run(context.Context(), opts...); err != nil {
		log.Fatal().Err(err).Msg("failed to generate")
	}
*/
package context
