package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/chatstat/internal/config"
	"github.com/MikeSquared-Agency/chatstat/internal/report"
	"github.com/MikeSquared-Agency/chatstat/internal/transcript"
)

func localLogger(cmd *cobra.Command, g *globalFlags) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: config.ParseLevel(g.logLevel)}))
}

func newAnalyzeCmd(g *globalFlags) *cobra.Command {
	var (
		user   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Analyze an exported chat",
		Long: `Analyze parses an exported chat and prints every view of the report:
top statistics, timelines, activity maps, busiest users, common words and emoji.`,
		Example: `  chatstat analyze "WhatsApp Chat with Family.txt"
  chatstat analyze chat.txt --user Alice --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains([]string{report.FormatText, report.FormatJSON, report.FormatYAML}, format) {
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}
			logger := localLogger(cmd, g)

			set, err := transcript.ParseFile(args[0])
			if err != nil {
				return err
			}
			if user != transcript.Overall && !slices.Contains(set.Senders(), user) {
				logger.Warn("user not found in transcript", "user", user)
			}

			b := report.NewBuilder(newEngine(g.stopWords, logger), logger)
			r := b.Build(set, user, filepath.Base(args[0]))
			return report.Write(cmd.OutOrStdout(), r, format)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", transcript.Overall, "sender to analyze")
	cmd.Flags().StringVarP(&format, "format", "f", report.FormatText, "output format: text, json or yaml")
	return cmd
}

func newParseCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the parsed records of an exported chat as JSON lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := transcript.ParseFile(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for r := range set.All() {
				if err := enc.Encode(r); err != nil {
					return fmt.Errorf("encode record: %w", err)
				}
			}
			localLogger(cmd, g).Info("parsed transcript", "file", args[0], "records", set.Len())
			return nil
		},
	}
}

func newUsersCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "users FILE",
		Short: "List the senders of an exported chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := transcript.ParseFile(args[0])
			if err != nil {
				return err
			}
			if set.Empty() {
				localLogger(cmd, g).Warn(report.NoticeNoData, "file", args[0])
			}
			for _, u := range set.Users() {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}
}
