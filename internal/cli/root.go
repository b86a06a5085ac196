// Package cli provides the chatstat command-line interface.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/chatstat/internal/analysis"
	"github.com/MikeSquared-Agency/chatstat/internal/config"
	"github.com/MikeSquared-Agency/chatstat/internal/lexicon"
)

// Version is set at build time.
var Version = "0.1.0"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel  string
	stopWords string
}

// NewRootCmd builds the chatstat command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "chatstat",
		Short: "WhatsApp chat export analyzer",
		Long: `chatstat parses exported WhatsApp transcripts and reports who talks,
when, and with which words and emoji.

Run "chatstat serve" for the HTTP and NATS service, or analyze an export
directly from the command line.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level for local commands (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&g.stopWords, "stopwords", "", "stop-word list (default $CHATSTAT_STOPWORDS or "+lexicon.DefaultStopWordsPath+")")

	root.AddCommand(newServeCmd(g))
	root.AddCommand(newAnalyzeCmd(g))
	root.AddCommand(newParseCmd(g))
	root.AddCommand(newUsersCmd(g))
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// newEngine loads the stop-word list and builds an analysis engine. A stop
// list that cannot be read is logged and treated as empty.
func newEngine(path string, logger *slog.Logger) *analysis.Engine {
	if path == "" {
		path = config.Load().StopWordsPath
	}
	sw, err := lexicon.LoadStopWords(path)
	if err != nil {
		logger.Warn("stop words unavailable, counting every word", "path", path, "error", err)
	}
	logger.Debug("stop words loaded", "path", path, "count", len(sw))
	return analysis.New(analysis.Resources{StopWords: sw})
}
