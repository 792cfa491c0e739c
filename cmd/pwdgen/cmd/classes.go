package cmd

import (
	"os"

	"github.com/assetnote/pwdgen/internal/pwdgen"
	"github.com/assetnote/pwdgen/pkg/log"
	"github.com/spf13/cobra"
)

// classesCmd represents the classes command
var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "list the character classes usable as @rules",
	Long: `classes lists every character class that can be used in an accept or exclude rule
along with its members. Classes follow the C locale definitions over the 7-bit range`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, err := pwdgen.FormatFromString(Output)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid format")
		}
		if err := pwdgen.ListClasses(os.Stdout, format); err != nil {
			log.Fatal().Err(err).Msg("failed to list classes")
		}
	},
}

func init() {
	rootCmd.AddCommand(classesCmd)
}
