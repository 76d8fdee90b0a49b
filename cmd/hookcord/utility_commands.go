package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aleister1102/hookcord/internal/notifier/discord"
	"github.com/spf13/cobra"
)

func skipConfig(*cobra.Command, []string) error { return nil }

func newTimestampCommand() *cobra.Command {
	var style string
	var at string

	cmd := &cobra.Command{
		Use:   "timestamp",
		Short: "Print a markdown timestamp such as <t:1700000000:R>",
		Long: `Print a markdown timestamp that clients render in the reader's timezone.

Styles:
  R  relative        (in 2 hours)
  D  long date       (20 April 2021)
  d  short date      (20/04/2021)
  T  long time       (16:20:30)
  t  short time      (16:20)
  F  long date/time  (Tuesday, 20 April 2021 16:20)
  f  short date/time (20 April 2021 16:20)`,
		Example: `  hookcord timestamp --style R
  hookcord timestamp --style F --at 2024-12-31T23:59:59Z`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: skipConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			timestampStyle := discord.TimestampStyle(style)

			var out string
			if at == "" {
				var err error
				if out, err = discord.CreateTimestamp(timestampStyle); err != nil {
					return err
				}
			} else {
				t, err := parseAt(at)
				if err != nil {
					return err
				}
				if out, err = discord.FormatTimestamp(t, timestampStyle); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", string(discord.StyleRelative), "timestamp style: R, D, d, T, t, F or f")
	cmd.Flags().StringVar(&at, "at", "", "ISO-8601 time or epoch seconds, defaults to now")
	return cmd
}

// parseAt reads epoch seconds or an ISO-8601 string.
func parseAt(at string) (time.Time, error) {
	var value any = at
	if epoch, err := strconv.ParseFloat(at, 64); err == nil {
		value = epoch
	}
	normalized, err := discord.NormalizeTimestamp(value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339Nano, normalized)
}

func newColorCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "color <hex>",
		Short:             "Convert a hex color into the integer embeds use",
		Example:           `  hookcord color "#5865F2"`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: skipConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := discord.ConvertColorToInt(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
