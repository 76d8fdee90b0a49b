package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aleister1102/hookcord/internal/notifier/discord"
	"github.com/spf13/cobra"
)

func newGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the webhook's metadata as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withWebhook(cmd.Context(), func(ctx context.Context, webhook *discord.Webhook) error {
				info, err := webhook.Get(ctx)
				if err != nil {
					return err
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(info)
			})
		},
	}
}

func newUpdateCommand(a *app) *cobra.Command {
	var name, avatar string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change the webhook's name or avatar",
		Example: `  hookcord update --name deploy-bot
  hookcord update --avatar "data:image/png;base64,iVBORw0..."`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" && avatar == "" {
				return fmt.Errorf("nothing to update: set --name and/or --avatar")
			}
			return a.withWebhook(cmd.Context(), func(ctx context.Context, webhook *discord.Webhook) error {
				resp, err := webhook.Update(ctx, name, avatar)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Webhook updated (HTTP %d)\n", resp.StatusCode)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new webhook name")
	cmd.Flags().StringVar(&avatar, "avatar", "", "new avatar, passed through as given")
	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the webhook",
		Long:  `Delete the webhook. This cannot be undone, so --yes is required.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete the webhook without --yes")
			}
			return a.withWebhook(cmd.Context(), func(ctx context.Context, webhook *discord.Webhook) error {
				resp, err := webhook.Delete(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Webhook %s deleted (HTTP %d)\n", webhook.ID(), resp.StatusCode)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")
	return cmd
}
