// Package main is the entry point for the hookcord CLI.
//
// Usage:
//
//	hookcord send --content "deployed" --title api --color 00FF00
//	hookcord send -f message.yaml --wait
//	hookcord get | update --name ci-bot | delete
//	hookcord timestamp --style R
//	hookcord color "#5865F2"
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aleister1102/hookcord/internal/config"
	"github.com/aleister1102/hookcord/internal/httpclient"
	"github.com/aleister1102/hookcord/internal/logger"
	"github.com/aleister1102/hookcord/internal/metrics"
	"github.com/aleister1102/hookcord/internal/notifier/discord"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information, set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is the state shared by subcommands once the root pre-run has loaded
// configuration.
type app struct {
	configPath string
	webhookURL string
	logLevel   string

	cfg     *config.GlobalConfig
	logger  zerolog.Logger
	metrics *metrics.WebhookMetrics
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "hookcord",
		Short: "Build and send Discord webhook messages",
		Long: `hookcord builds Discord webhook messages (embeds, buttons, select menus,
polls) and sends, inspects, updates or deletes the webhook.

The webhook URL comes from --webhook-url, HOOKCORD_WEBHOOK_URL or the
webhook.url key of the config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to config file (YAML or JSON)")
	cmd.PersistentFlags().StringVarP(&a.webhookURL, "webhook-url", "w", "", "webhook URL, overrides the configured one")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newSendCommand(a),
		newGetCommand(a),
		newUpdateCommand(a),
		newDeleteCommand(a),
		newTimestampCommand(),
		newColorCommand(),
		newValidateCommand(a),
		newVersionCommand(),
	)

	return cmd
}

func (a *app) load() error {
	bootstrap := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.LoadGlobalConfig(a.configPath, bootstrap)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.LogLevel = a.logLevel
	}
	if a.webhookURL != "" {
		cfg.Webhook.URL = a.webhookURL
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}

	a.cfg = cfg
	a.logger = log
	a.metrics = metrics.NewWebhookMetrics()
	return nil
}

// newWebhook builds the configured webhook with metrics attached.
func (a *app) newWebhook() (*discord.Webhook, error) {
	if a.cfg.Webhook.URL == "" {
		return nil, fmt.Errorf("no webhook URL: use --webhook-url, HOOKCORD_WEBHOOK_URL or webhook.url in the config file")
	}

	client, err := httpclient.NewHTTPClientBuilder(a.logger).
		WithConfig(a.cfg.HTTPClient.ToClientConfig()).
		Build()
	if err != nil {
		return nil, err
	}

	opts := []discord.WebhookOption{
		discord.WithObserver(a.metrics),
		discord.WithAssembler(discord.NewAssembler().WithAllowedMentions(a.cfg.Webhook.SerializeAllowedMentions)),
	}
	if a.cfg.Webhook.BaseURL != "" {
		opts = append(opts, discord.WithBaseURL(a.cfg.Webhook.BaseURL))
	}

	return discord.NewWebhook(a.cfg.Webhook.URL, client, a.logger, opts...)
}

// withWebhook runs fn against the configured webhook, then pushes metrics
// when a Pushgateway is configured. A failed push is logged, never returned.
func (a *app) withWebhook(ctx context.Context, fn func(context.Context, *discord.Webhook) error) error {
	webhook, err := a.newWebhook()
	if err != nil {
		return err
	}

	runErr := fn(ctx, webhook)

	if gateway := a.cfg.Metrics.PushgatewayURL; gateway != "" {
		if err := a.metrics.Push(ctx, gateway, a.cfg.Metrics.JobName); err != nil {
			a.logger.Warn().Err(err).Str("pushgateway", gateway).Msg("Failed to push metrics")
		}
	}

	return runErr
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}
