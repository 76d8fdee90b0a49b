package main

import (
	"encoding/json"
	"fmt"

	"github.com/aleister1102/hookcord/internal/message"
	"github.com/aleister1102/hookcord/internal/notifier/discord"
	"github.com/spf13/cobra"
)

func newValidateCommand(a *app) *cobra.Command {
	var messageFile string
	var printPayload bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the config file and, optionally, a message file",
		Long: `Validate the configuration and, with --message-file, assemble the message
exactly as send would without sending it.

Exit codes:
  0 - Everything is valid
  1 - Something is invalid (error details printed to stderr)`,
		Example: `  hookcord validate -c config.yaml
  hookcord validate -f message.yaml --print`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Config is valid!")
			if a.cfg.Webhook.URL != "" {
				if _, _, err := discord.ParseWebhookURL(a.cfg.Webhook.URL); err != nil {
					return err
				}
				fmt.Fprintln(out, "  Webhook URL:      set")
			} else {
				fmt.Fprintln(out, "  Webhook URL:      not set")
			}
			fmt.Fprintf(out, "  Max retries:      %d\n", a.cfg.HTTPClient.Retry.MaxRetries)
			fmt.Fprintf(out, "  Allowed mentions: serialized=%t\n", a.cfg.Webhook.SerializeAllowedMentions)

			if messageFile == "" {
				return nil
			}

			file, err := message.Load(messageFile)
			if err != nil {
				return err
			}
			params, err := file.Build(nil)
			if err != nil {
				return err
			}
			if err := preflight(params); err != nil {
				return err
			}
			payload, err := discord.NewAssembler().
				WithAllowedMentions(a.cfg.Webhook.SerializeAllowedMentions).
				Assemble(params)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Message is valid! (%d embeds, %d components)\n", len(payload.Embeds), len(payload.Components))
			if printPayload {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(payload)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&messageFile, "message-file", "f", "", "YAML or JSON message file to check")
	cmd.Flags().BoolVar(&printPayload, "print", false, "print the assembled payload")
	return cmd
}
