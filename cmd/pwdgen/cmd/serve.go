package cmd

import (
	"github.com/assetnote/pwdgen/internal/server"
	"github.com/assetnote/pwdgen/pkg/context"
	"github.com/assetnote/pwdgen/pkg/log"
	"github.com/spf13/cobra"
)

var (
	serveConfig = server.NewDefaultConfig()
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve generated values over http",
	Long: `serve starts an http server exposing

GET /generate?length=16&accept=@isalnum&exclude=0O&count=2
GET /classes
GET /health

Rule parameters can be repeated. Responses are json.
Bad rules or lengths return 400, unsatisfiable rules 422 and entropy failures 503.
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := server.New(
			server.Listen(serveConfig.Listen),
			server.Timeout(serveConfig.Timeout),
			server.MaxLength(serveConfig.MaxLength),
			server.MaxCount(serveConfig.MaxCount),
			server.MaxRetries(serveConfig.MaxRetries),
			server.Source(serveConfig.Source),
		)
		if err := s.ListenAndServe(context.Context()); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveConfig.Listen, "listen", serveConfig.Listen, "address to listen on")
	serveCmd.Flags().DurationVarP(&serveConfig.Timeout, "timeout", "t", serveConfig.Timeout, "time limit for generating a single response")
	serveCmd.Flags().IntVar(&serveConfig.MaxLength, "max-length", serveConfig.MaxLength, "largest length a client may request")
	serveCmd.Flags().IntVar(&serveConfig.MaxCount, "max-count", serveConfig.MaxCount, "largest count a client may request")
	serveCmd.Flags().Int64Var(&serveConfig.MaxRetries, "max-retries", serveConfig.MaxRetries, "maximum rejected draws per value")
	serveCmd.Flags().StringVar(&serveConfig.Source, "source", serveConfig.Source, "entropy source. can be crypto,urandom,cycle or a file path. opened once and shared by all requests")
}
