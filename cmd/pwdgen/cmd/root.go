package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/assetnote/pwdgen/internal/pwdgen"
	"github.com/assetnote/pwdgen/pkg/context"
	"github.com/assetnote/pwdgen/pkg/log"
	"github.com/spf13/cobra"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// These global variables can be configured with the corresponding lowercase flag
var (
	Verbose string // Verbose defines the logging level, either trace, debug, info, error, fatal
	Output  string // Output defines the output format, either pretty, text, json
	Quiet   bool   // Quiet mutes the informational logging around generated values

	cfgFile string
)

var (
	length      = "8"
	accept      = []string{}
	exclude     = []string{}
	count       = pwdgen.DefaultCount
	source      = pwdgen.DefaultSource
	maxRetries  int64
	template    = ""
	progressBar = false
	interactive = false
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pwdgen",
	Short: "pwdgen generates random passwords from a configurable alphabet",
	Long: `pwdgen generates random strings where every character is drawn uniformly
from an alphabet built out of accept and exclude rules.

A rule is either a character class such as @isdigit (the "is" is optional, @digit works too)
or a set of literal characters. Exclusion always wins over acceptance. With no rules at all
the alphabet is every visible character (@isgraph).

usage:
pwdgen
pwdgen -l 16 -a @isalnum
pwdgen -l 20 -a @isalnum -a '_-' -e 0OIl1 -n 5
pwdgen -l 12 -o json
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, err := pwdgen.FormatFromString(Output)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid format")
		}

		if !cmd.Flags().Changed("accept") {
			accept = viper.GetStringSlice("accept")
		}
		if !cmd.Flags().Changed("exclude") {
			exclude = viper.GetStringSlice("exclude")
		}

		opts := []pwdgen.Option{
			pwdgen.LengthString(viper.GetString("length")),
			pwdgen.Accept(accept...),
			pwdgen.Exclude(exclude...),
			pwdgen.Count(count),
			pwdgen.Source(viper.GetString("source")),
			pwdgen.MaxRetries(viper.GetInt64("max-retries")),
			pwdgen.Template(template),
			pwdgen.ProgressBarEnabled(progressBar),
			pwdgen.Interactive(interactive),
			pwdgen.OutputFormat(format),
		}

		if err := pwdgen.Run(context.Context(), opts...); err != nil {
			log.Fatal().Err(err).Msg("failed to generate")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pwdgen.yaml)")

	rootCmd.PersistentFlags().StringVarP(&Verbose, "verbose", "v", "info", "level of logging verbosity. can be error,info,debug,trace")
	rootCmd.PersistentFlags().StringVarP(&Output, "output", "o", "pretty", "output format. can be json,text,pretty")
	rootCmd.PersistentFlags().BoolVarP(&Quiet, "quiet", "q", false, "quiet mode. only warnings and errors are logged")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.Flags().StringVarP(&length, "length", "l", length, "number of characters to generate. must be a non-negative decimal")
	rootCmd.Flags().StringArrayVarP(&accept, "accept", "a", accept, "accept rule, either @class or literal characters. can be repeated")
	rootCmd.Flags().StringArrayVarP(&exclude, "exclude", "e", exclude, "exclude rule, either @class or literal characters. can be repeated")
	rootCmd.Flags().IntVarP(&count, "count", "n", count, "number of values to generate")
	rootCmd.Flags().StringVar(&source, "source", source, "entropy source. can be crypto,urandom,cycle or a file path")
	rootCmd.Flags().Int64Var(&maxRetries, "max-retries", maxRetries, "maximum rejected draws per value. 0 is unlimited")
	rootCmd.Flags().StringVar(&template, "template", template, "output template, e.g. '{{index}} {{value}} ({{bits}} bits)'")
	rootCmd.Flags().BoolVar(&progressBar, "progress", progressBar, "show a progress bar on stderr while generating")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", interactive, "ask for confirmation when the alphabet is weak")

	viper.BindPFlag("length", rootCmd.Flags().Lookup("length"))
	viper.BindPFlag("source", rootCmd.Flags().Lookup("source"))
	viper.BindPFlag("max-retries", rootCmd.Flags().Lookup("max-retries"))
}

func initLogging() {
	log.SetFormat(viper.GetString("output"))

	level := viper.GetString("verbose")
	if viper.GetBool("quiet") && !rootCmd.PersistentFlags().Changed("verbose") {
		level = "warn"
	}
	if level != "" {
		if err := log.SetLevelString(level); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize logging")
		}
	}
	log.Debug().Str("level", level).Str("format", viper.GetString("output")).Msg("custom log settings")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".pwdgen" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".pwdgen")
	}

	viper.SetEnvPrefix("pwdgen")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
