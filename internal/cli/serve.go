package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/chatstat/internal/api"
	"github.com/MikeSquared-Agency/chatstat/internal/config"
	"github.com/MikeSquared-Agency/chatstat/internal/hermes"
	"github.com/MikeSquared-Agency/chatstat/internal/processor"
	"github.com/MikeSquared-Agency/chatstat/internal/report"
	"github.com/MikeSquared-Agency/chatstat/internal/slack"
	"github.com/MikeSquared-Agency/chatstat/internal/store"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the NATS worker",
		Long: `Serve starts the analysis service. Configuration comes from the
environment (CHATSTAT_PORT, NATS_URL, DATABASE_URL, LOG_LEVEL, ...).
The database, NATS and Slack are optional; without them only uploads
through the HTTP API are analyzed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), g)
		},
	}
}

func serve(parent context.Context, g *globalFlags) error {
	cfg := config.Load()
	if g.stopWords != "" {
		cfg.StopWordsPath = g.stopWords
	}
	logger, closeLog := config.SetupLogger(cfg.LogLevel, cfg.LogFile)
	defer closeLog()

	logger.Info("chatstat starting", "port", cfg.Port, "version", Version)

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	builder := report.NewBuilder(newEngine(cfg.StopWordsPath, logger), logger)

	// Database (optional, read-only transcript source)
	var (
		db          *store.Store
		source      processor.TranscriptSource
		transcripts api.TranscriptLister
	)
	if cfg.DatabaseURL != "" {
		var err error
		db, err = store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()
		source, transcripts = db, db
		logger.Info("database connected")
	} else {
		logger.Warn("DATABASE_URL not set, stored transcripts disabled")
	}

	// NATS/Hermes (optional)
	var (
		hermesClient *hermes.Client
		bus          processor.Publisher
	)
	if cfg.NatsEnabled {
		var err error
		hermesClient, err = hermes.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, logger)
		if err != nil {
			return fmt.Errorf("connect to NATS: %w", err)
		}
		defer hermesClient.Close()
		bus = hermesClient
		logger.Info("NATS connected", "url", cfg.NatsURL)
	}

	// Slack poster (optional)
	var notifier processor.Notifier
	if cfg.SlackBotToken != "" && cfg.SlackChannel != "" {
		notifier = slack.NewPoster(cfg.SlackBotToken, cfg.SlackChannel, logger)
		logger.Info("slack poster ready", "channel", cfg.SlackChannel)
	}

	proc := processor.New(builder, source, bus, notifier, logger)

	if hermesClient != nil {
		if err := hermesClient.Subscribe(hermes.SubjectTranscriptSubmitted, proc.HandleTranscriptSubmitted); err != nil {
			return fmt.Errorf("subscribe to %s: %w", hermes.SubjectTranscriptSubmitted, err)
		}
	}

	srv := api.NewServer(api.Options{
		Port:           cfg.Port,
		APIToken:       cfg.APIToken,
		MaxUploadBytes: int64(cfg.MaxUploadMB) << 20,
		Transcripts:    transcripts,
	}, proc, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	if hermesClient != nil {
		if err := hermesClient.Publish(hermes.SubjectRegistered, map[string]any{
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"port":        cfg.Port,
			"version":     Version,
			"transcripts": db != nil,
		}); err != nil {
			logger.Warn("failed to publish registration", "error", err)
		}
	}

	logger.Info("chatstat ready", "port", cfg.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
		logger.Info("shutting down")
	case <-ctx.Done():
		logger.Info("context cancelled, shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown failed", "error", err)
	}
	logger.Info("chatstat stopped")
	return nil
}
