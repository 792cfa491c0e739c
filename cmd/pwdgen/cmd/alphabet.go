package cmd

import (
	"os"

	"github.com/assetnote/pwdgen/internal/pwdgen"
	"github.com/assetnote/pwdgen/pkg/log"
	"github.com/spf13/cobra"
)

var (
	alphabetAccept  = []string{}
	alphabetExclude = []string{}
	alphabetLength  = "8"
)

// alphabetCmd represents the alphabet command
var alphabetCmd = &cobra.Command{
	Use:   "alphabet [-a rule] [-e rule]",
	Short: "show the alphabet a set of rules resolves to",
	Long: `alphabet resolves accept and exclude rules into the final set of characters
and reports its size and the entropy of a value of the given length.
No entropy is consumed.

usage:
pwdgen alphabet -a @isalnum -e 0OIl1
pwdgen alphabet -e @ispunct -l 24 -o json
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, err := pwdgen.FormatFromString(Output)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid format")
		}

		o, err := pwdgen.NewOptions(
			pwdgen.LengthString(alphabetLength),
			pwdgen.Accept(alphabetAccept...),
			pwdgen.Exclude(alphabetExclude...),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid options")
		}
		g, err := pwdgen.NewGenerator(o)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build alphabet")
		}
		if err := pwdgen.DescribeAlphabet(os.Stdout, format, g, o.Length); err != nil {
			log.Fatal().Err(err).Msg("failed to describe alphabet")
		}
	},
}

func init() {
	rootCmd.AddCommand(alphabetCmd)

	alphabetCmd.Flags().StringArrayVarP(&alphabetAccept, "accept", "a", alphabetAccept, "accept rule, either @class or literal characters. can be repeated")
	alphabetCmd.Flags().StringArrayVarP(&alphabetExclude, "exclude", "e", alphabetExclude, "exclude rule, either @class or literal characters. can be repeated")
	alphabetCmd.Flags().StringVarP(&alphabetLength, "length", "l", alphabetLength, "length used for the entropy estimate")
}
