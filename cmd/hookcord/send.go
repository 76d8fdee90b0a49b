package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aleister1102/hookcord/internal/config"
	"github.com/aleister1102/hookcord/internal/message"
	"github.com/aleister1102/hookcord/internal/notifier/discord"
	"github.com/spf13/cobra"
)

type sendOptions struct {
	messageFile string
	content     string
	username    string
	avatarURL   string
	tts         bool
	wait        bool
	files       []string

	title       string
	description string
	url         string
	color       string
	timestamp   string
	footer      string
	fields      []string
	inline      bool
}

func newSendCommand(a *app) *cobra.Command {
	opts := &sendOptions{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message through the webhook",
		Long: `Send a message through the webhook.

The message comes from a YAML or JSON message file (--message-file), from
flags, or both: flags override the file's top-level values and add one more
embed when any embed flag is set.

Each --file is uploaded as an attachment alongside the message.

Components are validated and embeds are checked against the service limits
before anything is sent.`,
		Example: `  hookcord send --content "hello"
  hookcord send --title Deploy --color 00FF00 --field Version=v1.2 --field Region=eu --timestamp now
  hookcord send -f message.yaml --wait
  hookcord send --content "nightly report" --file report.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := opts.params(cmd, a.cfg.Webhook)
			if err != nil {
				return err
			}
			if err := preflight(params); err != nil {
				return err
			}

			return a.withWebhook(cmd.Context(), func(ctx context.Context, webhook *discord.Webhook) error {
				resp, err := webhook.Execute(ctx, params)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Message sent (HTTP %d)\n", resp.StatusCode)
				if params.Wait && len(resp.Body) > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), string(resp.Body))
				}
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.messageFile, "message-file", "f", "", "YAML or JSON message file")
	flags.StringVar(&opts.content, "content", "", "message content")
	flags.StringVar(&opts.username, "username", "", "override the webhook's username")
	flags.StringVar(&opts.avatarURL, "avatar-url", "", "override the webhook's avatar")
	flags.BoolVar(&opts.tts, "tts", false, "send as text-to-speech")
	flags.BoolVar(&opts.wait, "wait", false, "wait for the service to return the created message")
	flags.StringArrayVar(&opts.files, "file", nil, "file to attach, repeatable")

	flags.StringVar(&opts.title, "title", "", "embed title")
	flags.StringVar(&opts.description, "description", "", "embed description")
	flags.StringVar(&opts.url, "url", "", "embed title link")
	flags.StringVar(&opts.color, "color", "", "embed color as hex, e.g. FF0000")
	flags.StringVar(&opts.timestamp, "timestamp", "", `embed timestamp: ISO-8601, epoch seconds or "now"`)
	flags.StringVar(&opts.footer, "footer", "", "embed footer text")
	flags.StringArrayVar(&opts.fields, "field", nil, "embed field as name=value, repeatable")
	flags.BoolVar(&opts.inline, "inline", true, "render --field fields inline; --inline=false stacks them")

	return cmd
}

// params merges the message file and the flags into execute parameters. The
// configured username and avatar apply when neither sets one.
func (o *sendOptions) params(cmd *cobra.Command, defaults config.WebhookConfig) (discord.ExecuteParams, error) {
	var params discord.ExecuteParams
	if o.messageFile != "" {
		file, err := message.Load(o.messageFile)
		if err != nil {
			return params, err
		}
		if params, err = file.Build(nil); err != nil {
			return params, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("content") {
		params.Content = o.content
	}
	if flags.Changed("username") {
		params.Username = o.username
	}
	if flags.Changed("avatar-url") {
		params.AvatarURL = o.avatarURL
	}
	if params.Username == "" {
		params.Username = defaults.Username
	}
	if params.AvatarURL == "" {
		params.AvatarURL = defaults.AvatarURL
	}
	if flags.Changed("tts") {
		params.TTS = o.tts
	}
	if flags.Changed("wait") {
		params.Wait = o.wait
	}

	for _, path := range o.files {
		attachment, err := discord.LoadAttachment(path)
		if err != nil {
			return params, err
		}
		params.Files = append(params.Files, attachment)
	}

	embed, err := o.embed()
	if err != nil {
		return params, err
	}
	if embed != nil {
		params.Embeds = append(params.Embeds, embed)
	}

	return params, nil
}

// embed builds the flag embed, or nil when no embed flag is set.
func (o *sendOptions) embed() (*discord.EmbedBuilder, error) {
	if o.title == "" && o.description == "" && o.url == "" && o.color == "" &&
		o.timestamp == "" && o.footer == "" && len(o.fields) == 0 {
		return nil, nil
	}

	embedOpts := []discord.EmbedOption{
		discord.WithTitle(o.title),
		discord.WithDescription(o.description),
		discord.WithURL(o.url),
	}
	if o.color != "" {
		embedOpts = append(embedOpts, discord.WithColor(o.color))
	}
	if o.footer != "" {
		embedOpts = append(embedOpts, discord.WithFooter(o.footer, ""))
	}
	switch strings.ToLower(o.timestamp) {
	case "":
	case "now":
		embedOpts = append(embedOpts, discord.WithTimestamp(nil))
	default:
		if epoch, err := strconv.ParseFloat(o.timestamp, 64); err == nil {
			embedOpts = append(embedOpts, discord.WithTimestamp(epoch))
		} else {
			embedOpts = append(embedOpts, discord.WithTimestamp(o.timestamp))
		}
	}

	embed, err := discord.NewEmbedBuilder(embedOpts...)
	if err != nil {
		return nil, err
	}

	for _, field := range o.fields {
		name, value, ok := strings.Cut(field, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --field %q: expected name=value", field)
		}
		embed.AddField(name, value, o.inline)
	}
	return embed, nil
}

// preflight rejects messages the service would refuse: broken components
// and embeds over the length limits.
func preflight(params discord.ExecuteParams) error {
	if params.Components != nil {
		if err := params.Components.Validate(); err != nil {
			return err
		}
	}

	validator := discord.NewEmbedValidator()
	for i, embed := range params.Embeds {
		if embed == nil {
			continue
		}
		if err := validator.ValidateLimits(embed.ToPayload()); err != nil {
			return fmt.Errorf("embeds[%d]: %w", i, err)
		}
	}
	return nil
}
